package klingon

// IsSatisfiedBy reports whether candidate, a dictionary entry, is a valid
// match for the query e.
//
// A query whose part of speech is unknown was typed by a user and matches
// any entry of that name. Otherwise the names must be equal and so must the
// parts of speech, except that a verb query accepts a pronoun ({ghaHtaH}), and
// a noun query accepts the question words {nuq} and {'Iv} as well as epithets
// ({petaQpu'}). Attributes set on the query must also be set on the candidate.
func (e *Entry) IsSatisfiedBy(candidate *Entry) bool {
	if !e.BasePartOfSpeechIsUnknown() {
		if e.Name != candidate.Name {
			return false
		}
		if e.base != candidate.base && !e.acceptsAcrossCategory(candidate) {
			return false
		}
		// A verb with a type 5 noun suffix must be able to act adjectivally.
		// Unconfirmed intransitive verbs may be misclassified statives, so
		// they are allowed. Pronouns with a type 5 suffix are found as nouns.
		if e.base == POSVerb && e.transitivity == HasType5NounSuffix {
			if candidate.IsPronoun() ||
				candidate.transitivity == Transitive ||
				(candidate.transitivity == Intransitive && candidate.transitivityConfirmed) {
				return false
			}
		}
	}

	if e.homophone != -1 && e.homophone != candidate.homophone {
		return false
	}

	switch {
	case e.slang && !candidate.slang,
		e.regional && !candidate.regional,
		e.archaic && !candidate.archaic,
		e.IsName() && !candidate.IsName(),
		e.IsNumber() && !candidate.IsNumber():
		return false
	}
	return true
}

func (e *Entry) acceptsAcrossCategory(candidate *Entry) bool {
	switch e.base {
	case POSVerb:
		return candidate.IsPronoun()
	case POSNoun:
		return candidate.Name == "nuq" || candidate.Name == "'Iv" || candidate.epithet
	}
	return false
}
