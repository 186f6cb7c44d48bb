package klingon

import (
	"strings"

	"go.uber.org/zap"
)

// Transitivity classifies a verb.
type Transitivity int

const (
	TransitivityUnknown Transitivity = iota
	Transitive
	Intransitive
	Stative
	Ambitransitive
	// HasType5NounSuffix never appears in the dictionary; a query uses it to
	// ask for verbs that can act adjectivally with a type 5 noun suffix.
	HasType5NounSuffix
)

func (t Transitivity) String() string {
	switch t {
	case Transitive:
		return "transitive"
	case Intransitive:
		return "intransitive"
	case Stative:
		return "stative"
	case Ambitransitive:
		return "ambitransitive"
	case HasType5NounSuffix:
		return "n5"
	default:
		return "unknown"
	}
}

// NounType is the subtype of a noun entry.
type NounType int

const (
	NounGeneral NounType = iota
	NounNumber
	NounName
	NounPronoun
)

// SentenceType is the subtype of a sentence entry.
type SentenceType int

const (
	SentencePhrase SentenceType = iota
	SentenceEmpireUnionDay
	SentenceCurseWarfare
	SentenceIdiom
	SentenceNentay
	SentenceProverb
	SentenceMilitaryCelebration
	SentenceRejection
	SentenceReplacementProverb
	SentenceSecrecyProverb
	SentenceToast
	SentenceLyrics
	SentenceBeginnersConversation
	SentenceJoke
)

// sentenceTypeCodes are the attribute tokens for each sentence type.
var sentenceTypeCodes = map[SentenceType]string{
	SentencePhrase:                "phr",
	SentenceEmpireUnionDay:        "eu",
	SentenceCurseWarfare:          "mv",
	SentenceIdiom:                 "idiom",
	SentenceNentay:                "nt",
	SentenceProverb:               "prov",
	SentenceMilitaryCelebration:   "Ql",
	SentenceRejection:             "rej",
	SentenceReplacementProverb:    "rp",
	SentenceSecrecyProverb:        "sp",
	SentenceToast:                 "toast",
	SentenceLyrics:                "lyr",
	SentenceBeginnersConversation: "bc",
	SentenceJoke:                  "joke",
}

// componentsMarker separates an entry query from its analysis components.
// It cannot occur in a link or an e-mail address.
const componentsMarker = "@@"

// Entry is the decoded form of a dictionary record or of a query.
// It is not modified after decoding.
type Entry struct {
	// ID is the store identifier, or 0 for queries.
	ID int64
	// Name is the entry name (headword).
	Name string
	// PartOfSpeech is the raw encoded field.
	PartOfSpeech string
	Definition   string
	Components   string
	Notes        string
	SearchTags   string
	Source       string

	base                  PartOfSpeech
	transitivity          Transitivity
	transitivityConfirmed bool

	nounType                 NounType
	inherentPlural           bool
	singularOfInherentPlural bool
	plural                   bool

	sentenceType SentenceType

	epithet bool

	animal, archaic, being, bodyPart, derivative, regional  bool
	foodRelated, invective, placeName, slang, weaponRelated bool
	prefix, suffix, indented                                bool

	alternativeSpelling, fictional, hypothetical, extendedCanon, doNotLink bool

	homophone     int
	showHomophone bool

	url string
}

// DecodeEntry builds an Entry from an entry name and its part-of-speech
// field. Unrecognized parts are reported to log and otherwise ignored, so
// decoding always succeeds.
func DecodeEntry(log *zap.Logger, name, partOfSpeech string) *Entry {
	e := &Entry{Name: name, PartOfSpeech: partOfSpeech}
	e.decodeMetadata(orNop(log))
	return e
}

// NewRecordEntry decodes a dictionary record.
func NewRecordEntry(log *zap.Logger, r Record) *Entry {
	e := &Entry{
		ID:           r.ID,
		Name:         r.EntryName,
		PartOfSpeech: r.PartOfSpeech,
		Definition:   r.Definition,
		Components:   r.Components,
		Notes:        r.Notes,
		SearchTags:   r.SearchTags,
		Source:       r.Source,
	}
	e.decodeMetadata(orNop(log))
	return e
}

// ParseQuery decodes a query of the form "name[:pos[:attrs]]", optionally
// followed by "@@" and components, e.g. "Sop:v" or "ghaH:n:pro".
func ParseQuery(log *zap.Logger, query string) *Entry {
	e := &Entry{Name: query}
	if name, components, ok := strings.Cut(e.Name, componentsMarker); ok {
		e.Name, e.Components = name, components
	}
	if name, pos, ok := strings.Cut(e.Name, ":"); ok {
		e.Name, e.PartOfSpeech = name, pos
	}
	e.decodeMetadata(orNop(log))
	return e
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// decodeMetadata fills the decoded fields from e.PartOfSpeech.
func (e *Entry) decodeMetadata(log *zap.Logger) {
	e.homophone = -1
	e.showHomophone = true
	e.base = POSUnknown

	base, attrs, _ := strings.Cut(e.PartOfSpeech, ":")
	if base != "" {
		// "???" is in the table and decodes to unknown without a warning.
		if p, ok := basePartsOfSpeech[base]; ok {
			e.base = p
		} else {
			log.Warn("unrecognized part of speech",
				zap.String("entry", e.Name),
				zap.String("part_of_speech", e.PartOfSpeech))
		}
	}
	if attrs == "" {
		return
	}

	tokens := strings.Split(attrs, ",")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	for _, attr := range tokens {
		if apply, ok := attributeEffects[attr]; ok {
			apply(e)
			continue
		}
		if e.IsURL() {
			e.url = attr
			continue
		}
		log.Error("unrecognized attribute",
			zap.String("entry", e.Name),
			zap.String("attribute", attr))
	}
}

// ComponentEntries decodes the components field into query entries.
// Entries are separated by a comma and exactly one space; a bare comma
// separates attributes within one entry.
func (e *Entry) ComponentEntries(log *zap.Logger) []*Entry {
	if strings.TrimSpace(e.Components) == "" {
		return nil
	}
	var out []*Entry
	for _, q := range strings.Split(e.Components, ", ") {
		out = append(out, ParseQuery(log, strings.TrimSpace(q)))
	}
	return out
}

// BasePartOfSpeech returns the decoded base part of speech.
func (e *Entry) BasePartOfSpeech() PartOfSpeech { return e.base }

// BasePartOfSpeechIsUnknown reports whether the base could not be decoded.
func (e *Entry) BasePartOfSpeechIsUnknown() bool { return e.base == POSUnknown }

// Transitivity returns the verb transitivity.
func (e *Entry) Transitivity() Transitivity { return e.transitivity }

// TransitivityConfirmed reports whether the transitivity is attested.
func (e *Entry) TransitivityConfirmed() bool { return e.transitivityConfirmed }

// NounType returns the noun subtype.
func (e *Entry) NounType() NounType { return e.nounType }

// SentenceType returns the sentence subtype.
func (e *Entry) SentenceType() SentenceType { return e.sentenceType }

// SentenceTypeQuery returns the query listing all sentences of e's type,
// e.g. "*:sen:eu".
func (e *Entry) SentenceTypeQuery() string {
	return "*:sen:" + sentenceTypeCodes[e.sentenceType]
}

// Homophone returns the homophone number, or -1 when there is none.
func (e *Entry) Homophone() int { return e.homophone }

// ShowHomophone reports whether the homophone number should be displayed.
func (e *Entry) ShowHomophone() bool { return e.showHomophone }

func (e *Entry) IsNoun() bool     { return e.base == POSNoun }
func (e *Entry) IsSentence() bool { return e.base == POSSentence }
func (e *Entry) IsSource() bool   { return e.base == POSSource }
func (e *Entry) IsURL() bool      { return e.base == POSURL }

// IsVerb reports a verb that is not itself a prefix or suffix.
func (e *Entry) IsVerb() bool { return e.base == POSVerb && !e.IsPrefix() && !e.IsSuffix() }

// IsPrefix checks the entry name too, since links in component lists are
// not fully annotated.
func (e *Entry) IsPrefix() bool {
	return e.base == POSVerb && (e.prefix || strings.HasSuffix(e.Name, "-"))
}

// IsSuffix checks the entry name too, like IsPrefix.
func (e *Entry) IsSuffix() bool { return e.suffix || strings.HasPrefix(e.Name, "-") }

// IsMisc covers the unaffixable categories: adverbials, conjunctions and
// question words.
func (e *Entry) IsMisc() bool {
	return e.base == POSAdverbial || e.base == POSConjunction || e.base == POSQuestion
}

func (e *Entry) IsPronoun() bool { return e.base == POSNoun && e.nounType == NounPronoun }
func (e *Entry) IsName() bool    { return e.base == POSNoun && e.nounType == NounName }
func (e *Entry) IsNumber() bool  { return e.base == POSNoun && e.nounType == NounNumber }

func (e *Entry) IsInherentPlural() bool               { return e.inherentPlural }
func (e *Entry) IsSingularFormOfInherentPlural() bool { return e.singularOfInherentPlural }

// IsPlural reports a noun that already carries plural suffixes, as opposed
// to an inherent plural.
func (e *Entry) IsPlural() bool { return e.plural }

func (e *Entry) IsEpithet() bool                { return e.epithet }
func (e *Entry) IsAnimal() bool                 { return e.animal }
func (e *Entry) IsArchaic() bool                { return e.archaic }
func (e *Entry) IsBeingCapableOfLanguage() bool { return e.being }
func (e *Entry) IsBodyPart() bool               { return e.bodyPart }
func (e *Entry) IsDerivative() bool             { return e.derivative }
func (e *Entry) IsRegional() bool               { return e.regional }
func (e *Entry) IsFoodRelated() bool            { return e.foodRelated }
func (e *Entry) IsInvective() bool              { return e.invective }
func (e *Entry) IsPlaceName() bool              { return e.placeName }
func (e *Entry) IsSlang() bool                  { return e.slang }
func (e *Entry) IsWeaponsRelated() bool         { return e.weaponRelated }
func (e *Entry) IsAlternativeSpelling() bool    { return e.alternativeSpelling }
func (e *Entry) IsFictionalEntity() bool        { return e.fictional }
func (e *Entry) IsHypothetical() bool           { return e.hypothetical }
func (e *Entry) IsExtendedCanon() bool          { return e.extendedCanon }
func (e *Entry) DoNotLink() bool                { return e.doNotLink }
func (e *Entry) IsIndented() bool               { return e.indented }
