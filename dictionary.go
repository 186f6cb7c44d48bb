// Package klingon provides morphological analysis of Klingon words and
// dictionary lookup of their parts: verb prefixes, noun and verb suffixes,
// the rovers {-be'} and {-qu'}, numbers, and adjectival verbs. It also
// decodes the part-of-speech metadata of dictionary entries and matches
// lookup queries against them.
package klingon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store returns the dictionary records whose entry name is exactly name.
// Names are case-sensitive. Implementations must be safe for concurrent use.
type Store interface {
	Lookup(ctx context.Context, name string) ([]Record, error)
}

// DefaultWorkers is the number of words LookupWords resolves at once.
const DefaultWorkers = 4

// Dictionary looks up words in a Store, analyzing them into their parts.
type Dictionary struct {
	store    Store
	analyzer *Analyzer
	log      *zap.Logger
	lenient  bool
	workers  int
}

// DictionaryOption configures a Dictionary.
type DictionaryOption func(*Dictionary)

// WithAnalyzer replaces the default Analyzer.
func WithAnalyzer(a *Analyzer) DictionaryOption {
	return func(d *Dictionary) {
		if a != nil {
			d.analyzer = a
		}
	}
}

// WithLenient controls whether unaffixed words are looked up without a
// part of speech. It is on by default.
func WithLenient(lenient bool) DictionaryOption {
	return func(d *Dictionary) { d.lenient = lenient }
}

// WithWorkers sets how many words LookupWords resolves concurrently.
func WithWorkers(n int) DictionaryOption {
	return func(d *Dictionary) {
		if n > 0 {
			d.workers = n
		}
	}
}

// NewDictionary returns a Dictionary over store. log may be nil.
func NewDictionary(store Store, log *zap.Logger, opts ...DictionaryOption) *Dictionary {
	d := &Dictionary{
		store:   store,
		log:     orNop(log),
		lenient: true,
		workers: DefaultWorkers,
	}
	for _, o := range opts {
		o(d)
	}
	if d.analyzer == nil {
		d.analyzer = NewAnalyzer(WithLogger(d.log))
	}
	return d
}

// Analyzer returns the analyzer used for lookups.
func (d *Dictionary) Analyzer() *Analyzer { return d.analyzer }

// Lookup finds the entries for query. A query containing ':' is an exact
// "name:pos[:attrs]" query and is not analyzed. Any other query is analyzed
// as a noun and as a verb, and every part found is looked up.
func (d *Dictionary) Lookup(ctx context.Context, query string) ([]Match, error) {
	query = Normalize(query)
	if query == "" {
		return nil, nil
	}
	l := &lookup{d: d, entries: make(map[string][]*Entry)}

	if strings.Contains(query, ":") {
		if err := l.add(ctx, query, nil); err != nil {
			return nil, err
		}
		return l.matches, nil
	}

	for _, kind := range []Kind{Noun, Verb} {
		leaves, err := d.analyzer.AnalyzeContext(ctx, query, kind)
		if errors.Is(err, ErrTooManyCandidates) {
			d.log.Warn("analysis truncated",
				zap.String("word", query),
				zap.Stringer("kind", kind),
				zap.Int("leaves", len(leaves)))
		} else if err != nil {
			return nil, err
		}
		for _, w := range leaves {
			if err := l.add(ctx, w.Key(d.lenient), w); err != nil {
				return nil, err
			}
			if w.IsNumberLike() {
				if root := w.NumberRoot(); root != "" && root != w.Stem() {
					if err := l.add(ctx, root+":"+w.NumberRootAnnotation(), w); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	d.log.Debug("looked up word",
		zap.String("query", query),
		zap.Int("matches", len(l.matches)))
	return l.matches, nil
}

// LookupWords looks up each word independently. Results are in the order
// of words.
func (d *Dictionary) LookupWords(ctx context.Context, words []string) ([]WordResult, error) {
	results := make([]WordResult, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			matches, err := d.Lookup(ctx, word)
			if err != nil {
				return fmt.Errorf("lookup %q: %w", word, err)
			}
			results[i] = WordResult{Word: Normalize(word), Matches: matches}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LookupText splits text into words and looks each of them up.
func (d *Dictionary) LookupText(ctx context.Context, text string) ([]WordResult, error) {
	return d.LookupWords(ctx, SplitWords(text))
}

// lookup collects the matches for one query. Decoded entries are cached per
// name since many analyses share a stem.
type lookup struct {
	d       *Dictionary
	entries map[string][]*Entry
	seen    map[matchKey]bool
	matches []Match
}

type matchKey struct {
	id  int64
	key string
}

func (l *lookup) add(ctx context.Context, key string, w *ComplexWord) error {
	q := ParseQuery(l.d.log, key)
	entries, err := l.fetch(ctx, q.Name)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !q.IsSatisfiedBy(e) {
			continue
		}
		// Pronouns stand in for verbs but take no prefix.
		if w != nil && w.VerbPrefix() != "" && e.IsPronoun() {
			continue
		}
		mk := matchKey{id: e.ID, key: key}
		if l.seen[mk] {
			continue
		}
		if l.seen == nil {
			l.seen = make(map[matchKey]bool)
		}
		l.seen[mk] = true
		l.matches = append(l.matches, Match{Entry: e, Analysis: w, Key: key})
	}
	return nil
}

func (l *lookup) fetch(ctx context.Context, name string) ([]*Entry, error) {
	if entries, ok := l.entries[name]; ok {
		return entries, nil
	}
	records, err := l.d.store.Lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("store lookup %q: %w", name, err)
	}
	entries := make([]*Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, NewRecordEntry(l.d.log, r))
	}
	l.entries[name] = entries
	return entries, nil
}
