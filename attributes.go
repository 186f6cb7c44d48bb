package klingon

// attributeEffects maps each attribute token of the part-of-speech field to
// its effect on the entry being decoded. Tokens not listed here are
// unrecognized, except on URL entries where the token is the URL.
var attributeEffects = map[string]func(e *Entry){
	// Affix markers and display.
	"pref":   func(e *Entry) { e.prefix = true },
	"suff":   func(e *Entry) { e.suffix = true },
	"indent": func(e *Entry) { e.indented = true },

	// Verbs. Ambitransitive and stative verbs are never marked otherwise,
	// so they count as confirmed.
	"ambi": setTransitivity(Ambitransitive, true),
	"i":    setTransitivity(Intransitive, false),
	"i_c":  setTransitivity(Intransitive, true),
	"is":   setTransitivity(Stative, true),
	"t":    setTransitivity(Transitive, false),
	"t_c":  setTransitivity(Transitive, true),
	"n5":   setTransitivity(HasType5NounSuffix, false),

	// Nouns.
	"name": func(e *Entry) {
		e.nounType = NounName
		e.showHomophone = false
	},
	"num":    func(e *Entry) { e.nounType = NounNumber },
	"pro":    func(e *Entry) { e.nounType = NounPronoun },
	"inhpl":  func(e *Entry) { e.inherentPlural = true },
	"inhps":  func(e *Entry) { e.singularOfInherentPlural = true },
	"plural": func(e *Entry) { e.plural = true },

	// Sentences.
	"eu":    setSentenceType(SentenceEmpireUnionDay),
	"mv":    setSentenceType(SentenceCurseWarfare),
	"idiom": setSentenceType(SentenceIdiom),
	"nt":    setSentenceType(SentenceNentay),
	"phr":   setSentenceType(SentencePhrase),
	"prov":  setSentenceType(SentenceProverb),
	"Ql":    setSentenceType(SentenceMilitaryCelebration),
	"rej":   setSentenceType(SentenceRejection),
	"rp":    setSentenceType(SentenceReplacementProverb),
	"sp":    setSentenceType(SentenceSecrecyProverb),
	"toast": setSentenceType(SentenceToast),
	"lyr":   setSentenceType(SentenceLyrics),
	"bc":    setSentenceType(SentenceBeginnersConversation),
	"joke":  setSentenceType(SentenceJoke),

	// Exclamations.
	"epithet": func(e *Entry) { e.epithet = true },

	// Categories.
	"anim":    func(e *Entry) { e.animal = true },
	"archaic": func(e *Entry) { e.archaic = true },
	"being":   func(e *Entry) { e.being = true },
	"body":    func(e *Entry) { e.bodyPart = true },
	"deriv":   func(e *Entry) { e.derivative = true },
	"reg":     func(e *Entry) { e.regional = true },
	"food":    func(e *Entry) { e.foodRelated = true },
	"inv":     func(e *Entry) { e.invective = true },
	"place":   func(e *Entry) { e.placeName = true },
	"slang":   func(e *Entry) { e.slang = true },
	"weap":    func(e *Entry) { e.weaponRelated = true },

	// Additional metadata.
	"alt":    func(e *Entry) { e.alternativeSpelling = true },
	"fic":    func(e *Entry) { e.fictional = true },
	"hyp":    func(e *Entry) { e.hypothetical = true },
	"extcan": func(e *Entry) { e.extendedCanon = true },
	"nolink": func(e *Entry) { e.doNotLink = true },

	// Export tags used by deck generation; no effect here.
	"noanki": func(*Entry) {},
	"klcp1":  func(*Entry) {},

	// Homophone numbers; the "h" forms are not displayed.
	"1":  setHomophone(1, true),
	"2":  setHomophone(2, true),
	"3":  setHomophone(3, true),
	"4":  setHomophone(4, true),
	"5":  setHomophone(5, true),
	"1h": setHomophone(1, false),
	"2h": setHomophone(2, false),
	"3h": setHomophone(3, false),
	"4h": setHomophone(4, false),
	"5h": setHomophone(5, false),
}

func setTransitivity(t Transitivity, confirmed bool) func(*Entry) {
	return func(e *Entry) {
		e.transitivity = t
		if confirmed {
			e.transitivityConfirmed = true
		}
	}
}

func setSentenceType(t SentenceType) func(*Entry) {
	return func(e *Entry) { e.sentenceType = t }
}

func setHomophone(n int, show bool) func(*Entry) {
	return func(e *Entry) {
		e.homophone = n
		if !show {
			e.showHomophone = false
		}
	}
}
