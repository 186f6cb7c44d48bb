package klingon

// PartOfSpeech is the base part of speech of a dictionary entry, written
// with the abbreviation used in the part-of-speech field.
type PartOfSpeech string

const (
	POSNoun        PartOfSpeech = "n"
	POSVerb        PartOfSpeech = "v"
	POSAdverbial   PartOfSpeech = "adv"
	POSConjunction PartOfSpeech = "conj"
	POSQuestion    PartOfSpeech = "ques"
	POSSentence    PartOfSpeech = "sen"
	POSExclamation PartOfSpeech = "excl"
	POSSource      PartOfSpeech = "src"
	POSURL         PartOfSpeech = "url"
	POSUnknown     PartOfSpeech = "???"
)

// basePartsOfSpeech is the fixed set of recognized base abbreviations.
var basePartsOfSpeech = map[string]PartOfSpeech{
	"n":    POSNoun,
	"v":    POSVerb,
	"adv":  POSAdverbial,
	"conj": POSConjunction,
	"ques": POSQuestion,
	"sen":  POSSentence,
	"excl": POSExclamation,
	"src":  POSSource,
	"url":  POSURL,
	"???":  POSUnknown,
}

// Name returns the English name of the part of speech.
func (p PartOfSpeech) Name() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSVerb:
		return "verb"
	case POSAdverbial:
		return "adverbial"
	case POSConjunction:
		return "conjunction"
	case POSQuestion:
		return "question"
	case POSSentence:
		return "sentence"
	case POSExclamation:
		return "exclamation"
	case POSSource:
		return "source"
	case POSURL:
		return "url"
	default:
		return "unknown"
	}
}

// Record is a dictionary row as returned by a Store.
type Record struct {
	// ID is the store's identifier for the row.
	ID int64 `json:"id" yaml:"id"`
	// EntryName is the headword, matched case-sensitively.
	EntryName string `json:"entry_name" yaml:"entry_name"`
	// PartOfSpeech is the encoded field base[":" attr{"," attr}].
	PartOfSpeech string `json:"part_of_speech" yaml:"part_of_speech"`
	Definition   string `json:"definition,omitempty" yaml:"definition"`
	// Components lists the queries of the parts of a complex entry,
	// separated by ", ".
	Components string `json:"components,omitempty" yaml:"components"`
	Notes      string `json:"notes,omitempty" yaml:"notes"`
	SearchTags string `json:"search_tags,omitempty" yaml:"search_tags"`
	Source     string `json:"source,omitempty" yaml:"source"`
}

// Match is a dictionary entry found for a word, with the analysis that
// produced it.
type Match struct {
	// Entry is the decoded dictionary entry.
	Entry *Entry
	// Analysis is the decomposition whose key found the entry. It is nil
	// for exact "name:pos" queries.
	Analysis *ComplexWord
	// Key is the lookup key that was matched.
	Key string
}

// WordResult holds the matches for one word of a text.
type WordResult struct {
	// Word is the normalized word.
	Word string
	// Matches lists the entries found, in analysis order.
	Matches []Match
}
