package klingon

// Noun suffix slots, innermost first. nounSuffixes[i][0] is always the
// empty string, meaning no suffix of type i+1 is present.
const (
	NounType1 = iota
	NounType2
	NounType3
	NounType4
	NounType5
	numNounSlots
)

// Verb suffix slots, innermost first. The two rover-adjacent pseudo-slots
// {-Ha'} and {-Qo'} sit at fixed positions: {-Ha'} directly after the verb,
// {-Qo'} between types 8 and 9.
const (
	VerbUndo = iota
	VerbType1
	VerbType2
	VerbType3
	VerbType4
	VerbType5
	VerbType6
	VerbType7
	VerbType8
	VerbRefusal
	VerbType9
	numVerbSlots
)

// nounSuffixes lists the noun suffixes per slot, in match order.
var nounSuffixes = [numNounSlots][]string{
	NounType1: {"", "'a'", "Hom", "oy"},
	NounType2: {"", "pu'", "Du'", "mey"},
	NounType3: {"", "qoq", "Hey", "na'"},
	NounType4: {"", "wIj", "wI'", "maj", "ma'", "lIj", "lI'", "raj", "ra'", "Daj", "chaj", "vam", "vetlh"},
	NounType5: {"", "Daq", "vo'", "mo'", "vaD", "'e'"},
}

// nounSuffixOy is the index of {-oy} in the type 1 noun suffixes.
const nounSuffixOy = 3

// verbSuffixes lists the verb suffixes per slot, in match order.
var verbSuffixes = [numVerbSlots][]string{
	VerbUndo:    {"", "Ha'"},
	VerbType1:   {"", "'egh", "chuq"},
	VerbType2:   {"", "nIS", "qang", "rup", "beH", "vIp"},
	VerbType3:   {"", "choH", "qa'"},
	VerbType4:   {"", "moH"},
	VerbType5:   {"", "lu'", "laH", "luH", "la'"},
	VerbType6:   {"", "chu'", "bej", "ba'", "law'"},
	VerbType7:   {"", "pu'", "ta'", "taH", "lI'"},
	VerbType8:   {"", "neS"},
	VerbRefusal: {"", "Qo'"},
	VerbType9:   {"", "DI'", "chugh", "pa'", "vIS", "mo'", "bogh", "meH", "'a'", "jaj", "wI'", "ghach"},
}

// verbPrefixes lists the pronominal verb prefixes. Index 0 is no prefix.
var verbPrefixes = []string{
	"", "bI", "bo", "che", "cho", "Da", "DI", "Du", "gho", "HI", "jI", "ju", "lI", "lu", "ma",
	"mu", "nI", "nu", "pe", "pI", "qa", "re", "Sa", "Su", "tI", "tu", "vI", "wI", "yI",
}

// The true rovers, which may follow any verb suffix slot.
const (
	roverNegation = "be'"
	roverEmphatic = "qu'"
)

// adjectivalMarkers may end a verb acting adjectivally before its type 5
// noun suffix. {-Qo'} is deliberately absent.
var adjectivalMarkers = []string{roverNegation, roverEmphatic, "Ha'"}

// Nominalizing type 9 suffixes; a noun stem ending in one of these is
// re-analyzed as a verb.
var nominalizers = []string{"wI'", "ghach"}

// numberDigits are the digits {wa'} through {Hut}. {pagh} is excluded since
// it does not normally take a modifier.
var numberDigits = []string{
	"", "wa'", "cha'", "wej", "loS", "vagh", "jav", "Soch", "chorgh", "Hut",
}

// numberModifiers are the powers of ten.
var numberModifiers = []string{
	"", "maH", "vatlh", "SaD", "SanID", "netlh", "bIp", "'uy'", "Saghan",
}

// Ordinal and repetition suffixes on numbers.
const (
	numberSuffixOrdinal    = "DIch"
	numberSuffixRepetition = "logh"
)

// specialNumberRoots take a number suffix without being digits:
// {paghlogh}, {HochDIch}, {'arlogh}.
var specialNumberRoots = []string{"pagh", "Hoch", "'ar"}

// isVowel reports whether b is a Klingon vowel. Klingon {I} is always upper case.
func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'I', 'o', 'u':
		return true
	}
	return false
}

// endsInVowel reports whether s ends in a Klingon vowel.
func endsInVowel(s string) bool {
	return s != "" && isVowel(s[len(s)-1])
}

// NounSuffixTable returns a copy of the suffixes for noun slot t (0-based).
func NounSuffixTable(t int) []string {
	if t < 0 || t >= numNounSlots {
		return nil
	}
	return append([]string(nil), nounSuffixes[t]...)
}

// VerbSuffixTable returns a copy of the suffixes for verb slot t (0-based,
// see VerbUndo through VerbType9).
func VerbSuffixTable(t int) []string {
	if t < 0 || t >= numVerbSlots {
		return nil
	}
	return append([]string(nil), verbSuffixes[t]...)
}

// VerbPrefixTable returns a copy of the verb prefixes, including the
// leading empty entry.
func VerbPrefixTable() []string {
	return append([]string(nil), verbPrefixes...)
}
