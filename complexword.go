package klingon

import (
	"strconv"
	"strings"
)

// Kind says whether a complex word is parsed as a noun or a verb.
type Kind int

const (
	Noun Kind = iota
	Verb
)

// String returns the part-of-speech abbreviation used in lookup keys.
func (k Kind) String() string {
	if k == Verb {
		return "v"
	}
	return "n"
}

// ParseKind maps "n", "noun", "v" and "verb" to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "n", "noun":
		return Noun, true
	case "v", "verb":
		return Verb, true
	}
	return Noun, false
}

type roverState uint8

const (
	roverUnresolved roverState = iota
	roverAbsent
	roverAttached
)

// Rover records where a true rover ({-be'} or {-qu'}) sits in a verb.
// The zero value is unresolved.
type Rover struct {
	state roverState
	slot  int
}

func attachedAt(slot int) Rover { return Rover{state: roverAttached, slot: slot} }

// Unresolved reports whether the analysis has not yet decided on this rover.
func (r Rover) Unresolved() bool { return r.state == roverUnresolved }

// Attached returns the verb slot the rover follows, if it is present.
func (r Rover) Attached() (int, bool) {
	return r.slot, r.state == roverAttached
}

// Absent reports whether the rover was ruled out or never found.
func (r Rover) Absent() bool { return r.state == roverAbsent }

func (r Rover) at(slot int) bool { return r.state == roverAttached && r.slot == slot }

// numberParts holds what number detection found on a noun leaf.
type numberParts struct {
	digit      int
	modifier   int
	suffix     string
	numberLike bool
}

// ComplexWord is one decomposition of a surface word into a verb prefix,
// a stem, suffixes per slot and rovers. Values are never modified once a
// branch has been derived from them.
type ComplexWord struct {
	// stem is the part not yet accounted for by affixes.
	stem string
	kind Kind
	// level is the number of suffix slots still to be examined; slots are
	// consumed outermost first, so level-1 is the next slot index.
	level int

	prefix       int
	nounSuffixes [numNounSlots]int
	verbSuffixes [numVerbSlots]int

	negation Rover
	emphatic Rover
	// negationFirst is set when {-be'} precedes {-qu'} at the same slot.
	negationFirst bool

	// adjectival marks a verb acting adjectivally with a type 5 noun suffix.
	adjectival bool
	homophone  int

	number numberParts
}

// NewComplexWord returns an unanalyzed candidate with every slot open.
func NewComplexWord(surface string, kind Kind) *ComplexWord {
	w := &ComplexWord{stem: surface, kind: kind, homophone: -1}
	if kind == Noun {
		w.level = numNounSlots
	} else {
		w.level = numVerbSlots
	}
	return w
}

// derive copies w with a new stem. All slot arrays are values, so the copy
// shares nothing with w.
func (w *ComplexWord) derive(stem string) *ComplexWord {
	c := *w
	c.stem = stem
	return &c
}

// settleRovers marks rovers that were never found as absent.
func (w *ComplexWord) settleRovers() {
	if w.negation.Unresolved() {
		w.negation.state = roverAbsent
	}
	if w.emphatic.Unresolved() {
		w.emphatic.state = roverAbsent
	}
}

// WithHomophone returns a copy of w whose lookup key selects homophone n.
func (w *ComplexWord) WithHomophone(n int) *ComplexWord {
	c := w.derive(w.stem)
	c.homophone = n
	return c
}

// Stem returns the residual word after all recognized affixes are removed.
func (w *ComplexWord) Stem() string { return w.stem }

// Kind returns whether w is parsed as a noun or a verb.
func (w *ComplexWord) Kind() Kind { return w.kind }

// Homophone returns the homophone number, or -1 when unset.
func (w *ComplexWord) Homophone() int { return w.homophone }

// IsAdjectivalVerb reports whether w is a verb carrying a type 5 noun suffix.
func (w *ComplexWord) IsAdjectivalVerb() bool { return w.adjectival }

// Negation returns the state of the {-be'} rover.
func (w *ComplexWord) Negation() Rover { return w.negation }

// Emphatic returns the state of the {-qu'} rover.
func (w *ComplexWord) Emphatic() Rover { return w.emphatic }

// Done reports whether every suffix slot has been examined.
func (w *ComplexWord) Done() bool { return w.level == 0 }

// IsBareWord reports whether no prefix, suffix or attached rover was found.
func (w *ComplexWord) IsBareWord() bool {
	if w.prefix != 0 {
		return false
	}
	if w.negation.state == roverAttached || w.emphatic.state == roverAttached {
		return false
	}
	return !w.hasNounSuffix() && !w.hasVerbSuffix()
}

func (w *ComplexWord) hasNounSuffix() bool {
	for _, s := range w.nounSuffixes {
		if s != 0 {
			return true
		}
	}
	return false
}

func (w *ComplexWord) hasVerbSuffix() bool {
	for _, s := range w.verbSuffixes {
		if s != 0 {
			return true
		}
	}
	return false
}

// Key returns the dictionary lookup key for w: "stem:n" or "stem:v",
// followed by ":N" when a homophone is selected. Adjectival verbs use
// "stem:v:n5". In lenient mode a bare word is looked up without a part of
// speech so that adverbials and other unaffixed categories match too.
func (w *ComplexWord) Key(lenient bool) string {
	if w.adjectival {
		return w.stem + ":v:n5"
	}
	if lenient && w.IsBareWord() {
		return w.stem
	}
	key := w.stem + ":" + w.kind.String()
	if w.homophone != -1 {
		key += ":" + strconv.Itoa(w.homophone)
	}
	return key
}

// VerbPrefix returns the prefix entry name, e.g. "bI-", or "".
func (w *ComplexWord) VerbPrefix() string {
	if w.prefix == 0 {
		return ""
	}
	return verbPrefixes[w.prefix] + "-"
}

// VerbSuffixes returns the suffix entry name per verb slot, e.g. "-taH",
// with "" for empty slots.
func (w *ComplexWord) VerbSuffixes() []string {
	out := make([]string, numVerbSlots)
	for i, s := range w.verbSuffixes {
		if s != 0 {
			out[i] = "-" + verbSuffixes[i][s]
		}
	}
	return out
}

// NounSuffixes returns the suffix entry name per noun slot, with "" for
// empty slots.
func (w *ComplexWord) NounSuffixes() []string {
	out := make([]string, numNounSlots)
	for i, s := range w.nounSuffixes {
		if s != 0 {
			out[i] = "-" + nounSuffixes[i][s]
		}
	}
	return out
}

// RoversAt returns the rovers following verb slot, in surface order.
func (w *ComplexWord) RoversAt(slot int) []string {
	neg, emph := w.negation.at(slot), w.emphatic.at(slot)
	switch {
	case neg && emph:
		if w.negationFirst {
			return []string{"-" + roverNegation, "-" + roverEmphatic}
		}
		return []string{"-" + roverEmphatic, "-" + roverNegation}
	case neg:
		return []string{"-" + roverNegation}
	case emph:
		return []string{"-" + roverEmphatic}
	}
	return nil
}

// VerbPrefixString returns the prefix formatted for display, e.g. "bI- + ".
func (w *ComplexWord) VerbPrefixString() string {
	if w.prefix == 0 {
		return ""
	}
	return verbPrefixes[w.prefix] + "- + "
}

// SuffixesString returns the suffixes formatted for display, verb suffixes
// first since some of them turn a verb into a noun.
func (w *ComplexWord) SuffixesString() string {
	var sb strings.Builder
	for i := 0; i < numVerbSlots; i++ {
		if s := w.verbSuffixes[i]; s != 0 {
			sb.WriteString(" + -" + verbSuffixes[i][s])
		}
		for _, r := range w.RoversAt(i) {
			sb.WriteString(" + " + r)
		}
	}
	for i := 0; i < numNounSlots; i++ {
		if s := w.nounSuffixes[i]; s != 0 {
			sb.WriteString(" + -" + nounSuffixes[i][s])
		}
	}
	return sb.String()
}

// Surface rebuilds the written word from the prefix, stem, suffixes and rovers.
func (w *ComplexWord) Surface() string {
	var sb strings.Builder
	sb.WriteString(verbPrefixes[w.prefix])
	sb.WriteString(w.stem)
	for i := 0; i < numVerbSlots; i++ {
		sb.WriteString(verbSuffixes[i][w.verbSuffixes[i]])
		for _, r := range w.RoversAt(i) {
			sb.WriteString(strings.TrimPrefix(r, "-"))
		}
	}
	for i := 0; i < numNounSlots; i++ {
		sb.WriteString(nounSuffixes[i][w.nounSuffixes[i]])
	}
	return sb.String()
}

// String is meant for debug logs.
func (w *ComplexWord) String() string {
	var sb strings.Builder
	sb.WriteString(w.stem)
	sb.WriteString(" (" + w.kind.String() + ")")
	if w.kind == Noun {
		for _, s := range w.nounSuffixes {
			sb.WriteString(" " + strconv.Itoa(s))
		}
	} else {
		for _, s := range w.verbSuffixes {
			sb.WriteString(" " + strconv.Itoa(s))
		}
	}
	return sb.String()
}

// AttachPrefix records prefix (written "bI-") on a verb. Unknown prefixes
// and noun candidates are ignored.
func (w *ComplexWord) AttachPrefix(prefix string) {
	if w.kind == Noun {
		return
	}
	for i := 1; i < len(verbPrefixes); i++ {
		if prefix == verbPrefixes[i]+"-" {
			w.prefix = i
			return
		}
	}
}

// AttachSuffix records suffix (written "-taH") and returns the verb slot
// that rovers seen next will attach to. isNounSuffix describes the suffix,
// not the stem: nominalized and adjectival verbs take noun suffixes.
// It reports false if the suffix is not recognized.
func (w *ComplexWord) AttachSuffix(suffix string, isNounSuffix bool, verbLevel int) (int, bool) {
	if suffix == "-"+numberSuffixOrdinal || suffix == "-"+numberSuffixRepetition {
		w.number.numberLike = true
		w.number.suffix = suffix[1:]
		return verbLevel, true
	}

	if isNounSuffix {
		for i := 0; i < numNounSlots; i++ {
			for j := 1; j < len(nounSuffixes[i]); j++ {
				if suffix == "-"+nounSuffixes[i][j] {
					w.nounSuffixes[i] = j
					return verbLevel, true
				}
			}
		}
		return verbLevel, false
	}

	switch suffix {
	case "-" + roverNegation:
		w.negation = attachedAt(verbLevel)
		if w.emphatic.at(verbLevel) {
			// {-qu'be'}
			w.negationFirst = false
		}
		return verbLevel, true
	case "-" + roverEmphatic:
		w.emphatic = attachedAt(verbLevel)
		if w.negation.at(verbLevel) {
			// {-be'qu'}
			w.negationFirst = true
		}
		return verbLevel, true
	}
	for i := 0; i < numVerbSlots; i++ {
		for j := 1; j < len(verbSuffixes[i]); j++ {
			if suffix == "-"+verbSuffixes[i][j] {
				w.verbSuffixes[i] = j
				return i, true
			}
		}
	}
	return verbLevel, false
}

// NewComplexWordFromComponents rebuilds an analysis from the component
// entry names of a dictionary entry, e.g. "bI-", "Sop", "-taH", "-qu'".
// Suffixes after the stem are treated as noun suffixes when kind is Noun.
// Components that are not recognized are returned in unknown.
func NewComplexWordFromComponents(kind Kind, components ...string) (w *ComplexWord, unknown []string) {
	w = &ComplexWord{kind: kind, homophone: -1}
	level := VerbUndo
	for _, c := range components {
		switch {
		case strings.HasSuffix(c, "-") && len(c) > 1:
			before := w.prefix
			w.AttachPrefix(c)
			if w.prefix == before {
				unknown = append(unknown, c)
			}
		case strings.HasPrefix(c, "-") && len(c) > 1:
			var ok bool
			level, ok = w.AttachSuffix(c, kind == Noun, level)
			if !ok {
				unknown = append(unknown, c)
			}
		default:
			w.stem = c
		}
	}
	return w, unknown
}
