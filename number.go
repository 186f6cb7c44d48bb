package klingon

import "strings"

// detectNumber marks a noun leaf as number-like when it has the shape
// digit[modifier][suffix], e.g. {wa'maH}, {cha'DIch}, {wejvatlhlogh}.
// The stem itself is left alone so that the whole word is still looked up.
func (w *ComplexWord) detectNumber() {
	if w.kind != Noun {
		return
	}

	root := w.stem
	// {-logh} is only split off a bare word; {-DIch} always.
	if strings.HasSuffix(root, numberSuffixOrdinal) ||
		(w.IsBareWord() && strings.HasSuffix(root, numberSuffixRepetition)) {
		n := len(root) - len(numberSuffixOrdinal)
		w.number.suffix = root[n:]
		root = root[:n]
	}

	for i := 1; i < len(numberModifiers); i++ {
		if strings.HasSuffix(root, numberModifiers[i]) {
			w.number.modifier = i
			root = strings.TrimSuffix(root, numberModifiers[i])
			break
		}
	}

	for i := 1; i < len(numberDigits); i++ {
		if root == numberDigits[i] {
			w.number.digit = i
			w.number.numberLike = true
			break
		}
	}

	// A bare digit is already found as a word on its own.
	if w.number.modifier == 0 && w.number.suffix == "" {
		w.number.digit = 0
		w.number.numberLike = false
	}

	if w.number.suffix != "" {
		for _, r := range specialNumberRoots {
			if root == r {
				w.number.numberLike = true
				break
			}
		}
	}
}

// IsNumberLike reports whether a noun analysis looks like a number.
func (w *ComplexWord) IsNumberLike() bool {
	return w.kind == Noun && w.number.numberLike
}

// NumberRoot returns the digit of a number, or one of {pagh}, {Hoch} and
// {'ar} when the stem starts with it.
func (w *ComplexWord) NumberRoot() string {
	if w.number.digit != 0 {
		return numberDigits[w.number.digit]
	}
	for _, r := range specialNumberRoots {
		if strings.HasPrefix(w.stem, r) {
			return r
		}
	}
	return ""
}

// NumberRootAnnotation returns the part of speech of NumberRoot:
// "n:num" for digits and {pagh}, "n" for {Hoch}, "ques" for {'ar}.
func (w *ComplexWord) NumberRootAnnotation() string {
	if w.number.digit != 0 {
		return "n:num"
	}
	switch {
	case strings.HasPrefix(w.stem, "pagh"):
		return "n:num"
	case strings.HasPrefix(w.stem, "Hoch"):
		return "n"
	case strings.HasPrefix(w.stem, "'ar"):
		return "ques"
	}
	return ""
}

// NumberModifier returns the power of ten found, e.g. "maH", or "".
func (w *ComplexWord) NumberModifier() string {
	return numberModifiers[w.number.modifier]
}

// NumberSuffix returns "DIch", "logh" or "".
func (w *ComplexWord) NumberSuffix() string {
	return w.number.suffix
}
