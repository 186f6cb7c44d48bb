package klingon

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer maps the look-alikes that keyboards and word
// processors substitute for the Klingon glottal stop {'} back to U+0027.
var apostropheReplacer = strings.NewReplacer(
	"’", "'", // ’ right single quotation mark
	"‘", "'", // ‘ left single quotation mark
	"ʼ", "'", // ʼ modifier letter apostrophe
	"´", "'", // ´ acute accent
	"`", "'",
)

// Normalize prepares user input for analysis: NFC composition, plain
// apostrophes and no surrounding space. Case is significant in Klingon
// ({q} and {Q} are different letters) and is kept.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = apostropheReplacer.Replace(s)
	return strings.TrimSpace(s)
}

// reWord matches one Klingon word: Latin letters and the glottal stop.
var reWord = regexp.MustCompile(`[A-Za-z']+`)

// SplitWords normalizes text and returns the words in it.
func SplitWords(text string) []string {
	return reWord.FindAllString(Normalize(text), -1)
}
