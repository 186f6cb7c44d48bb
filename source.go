package klingon

import (
	"regexp"
	"strconv"
)

const (
	tkdBookURL = "https://play.google.com/books/reader?id=dqOwxsg6XnwC"
	kgtBookURL = "https://play.google.com/books/reader?id=B5AiSVBw7nMC"
	// kgtPageOffset is how far the online edition of KGT is ahead of the
	// printed page numbers.
	kgtPageOffset = 9
)

var (
	reTKDPage     = regexp.MustCompile(`TKD p.([0-9]+)`)
	reTKDSection  = regexp.MustCompile(`TKD ([0-9]\.[0-9](?:\.[0-9])?)`)
	reTKDASection = regexp.MustCompile(`TKDA ([0-9]\.[0-9](?:\.[0-9])?)`)
	reKGTPage     = regexp.MustCompile(`KGT p.([0-9]+)`)
)

// tkdSectionPages maps TKD section numbers to printed pages.
var tkdSectionPages = map[string]int{
	"3.2.1": 19, "3.2.2": 19, "3.2.3": 20,
	"3.3.1": 21, "3.3.2": 21, "3.3.3": 24, "3.3.4": 25, "3.3.5": 26, "3.3.6": 29,
	"3.4":   30,
	// reTKDSection reads one digit per part, so "4.2.10" resolves as 4.2.1
	// and its own row is never used.
	"4.2.1": 35, "4.2.2": 36, "4.2.3": 37, "4.2.4": 38, "4.2.5": 38,
	"4.2.6": 39, "4.2.7": 40, "4.2.8": 43, "4.2.9": 43, "4.2.10": 44,
	"4.3": 46, "4.4": 49,
	"5.1": 51, "5.2": 52, "5.3": 55, "5.4": 55, "5.5": 57, "5.6": 58,
	"6.1":   59,
	"6.2.1": 61, "6.2.2": 62, "6.2.3": 63, "6.2.4": 64, "6.2.5": 65,
	"6.3": 67, "6.4": 68, "6.5": 70, "6.6": 70,
}

// tkdAddendumPages maps sections of the TKD addendum to printed pages.
var tkdAddendumPages = map[string]int{
	"3.3.1": 174,
	"4.2.6": 175, "4.2.9": 175,
	"6.7": 179, "6.8": 179,
}

// URL returns a link for the entry. Sources naming a page or section of
// TKD or KGT link into the online edition of the book; URL entries return
// their decoded URL. Other entries return "".
func (e *Entry) URL() string {
	if !e.IsSource() {
		return e.url
	}
	if m := reTKDPage.FindStringSubmatch(e.Name); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return tkdBookURL
		}
		return tkdBookURL + "&pg=GBS.PA" + strconv.Itoa(n)
	}
	if m := reTKDSection.FindStringSubmatch(e.Name); m != nil {
		return withPage(tkdBookURL, tkdSectionPages[m[1]])
	}
	if m := reTKDASection.FindStringSubmatch(e.Name); m != nil {
		return withPage(tkdBookURL, tkdAddendumPages[m[1]])
	}
	if m := reKGTPage.FindStringSubmatch(e.Name); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return kgtBookURL
		}
		return kgtBookURL + "&pg=GBS.PT" + strconv.Itoa(n+kgtPageOffset)
	}
	return e.url
}

// withPage appends a page parameter unless page is 0.
func withPage(base string, page int) string {
	if page == 0 {
		return base
	}
	return base + "&pg=GBS.PA" + strconv.Itoa(page)
}
