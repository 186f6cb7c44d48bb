package klingon

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// DefaultMaxCandidates bounds the leaves produced for one word. Real words
// stay far below it.
const DefaultMaxCandidates = 4096

// ErrTooManyCandidates is returned when an analysis hits the candidate cap.
// The leaves found so far are returned with it.
var ErrTooManyCandidates = errors.New("klingon: too many candidate analyses")

// Analyzer splits surface words into prefix, stem, suffixes and rovers.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	maxCandidates int
	log           *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxCandidates caps the number of leaves per word; n <= 0 disables the cap.
func WithMaxCandidates(n int) Option {
	return func(a *Analyzer) { a.maxCandidates = n }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// NewAnalyzer returns an Analyzer with DefaultMaxCandidates.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{maxCandidates: DefaultMaxCandidates, log: zap.NewNop()}
	for _, o := range opts {
		o(a)
	}
	return a
}

var defaultAnalyzer = NewAnalyzer()

// Analyze returns every decomposition of surface as the given kind using
// the default Analyzer.
func Analyze(surface string, kind Kind) []*ComplexWord {
	return defaultAnalyzer.Analyze(surface, kind)
}

// Analyze returns every decomposition of surface as the given kind. The
// unaffixed word itself is always among the results. If the candidate cap
// is hit the partial result is returned.
func (a *Analyzer) Analyze(surface string, kind Kind) []*ComplexWord {
	leaves, err := a.AnalyzeContext(context.Background(), surface, kind)
	if err != nil {
		a.log.Warn("analysis truncated",
			zap.String("word", surface),
			zap.Stringer("kind", kind),
			zap.Int("leaves", len(leaves)),
			zap.Error(err))
	}
	return leaves
}

// Keys analyzes surface as a noun and as a verb and returns the distinct
// lookup keys of the leaves, in the order they were first produced.
func (a *Analyzer) Keys(surface string, lenient bool) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, kind := range []Kind{Noun, Verb} {
		for _, w := range a.Analyze(surface, kind) {
			k := w.Key(lenient)
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// AnalyzeContext is Analyze with cancellation. It returns ctx.Err() or
// ErrTooManyCandidates together with the leaves found so far.
//
// The search is depth first over an explicit stack. Every state either
// consumes an affix or rover (shortening the stem) or closes a slot, so it
// always terminates.
func (a *Analyzer) AnalyzeContext(ctx context.Context, surface string, kind Kind) ([]*ComplexWord, error) {
	root := NewComplexWord(surface, kind)
	stack := []*ComplexWord{root}

	// Prefixed and unprefixed verbs are both explored; the prefixed one first.
	if kind == Verb {
		for i := len(verbPrefixes) - 1; i >= 1; i-- {
			p := verbPrefixes[i]
			if rest, ok := strings.CutPrefix(surface, p); ok && rest != "" {
				w := root.derive(rest)
				w.prefix = i
				stack = append(stack, w)
			}
		}
	}

	var leaves []*ComplexWord
	for steps := 0; len(stack) > 0; steps++ {
		if steps%64 == 0 {
			if err := ctx.Err(); err != nil {
				return leaves, err
			}
		}

		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.Done() {
			if w.kind == Verb {
				w.settleRovers()
			}
			w.detectNumber()
			leaves = append(leaves, w)
			stack = append(stack, reanalyze(w)...)
			if a.maxCandidates > 0 && len(leaves) >= a.maxCandidates && len(stack) > 0 {
				return leaves, ErrTooManyCandidates
			}
			continue
		}

		stack = append(stack, expand(w)...)
	}

	a.log.Debug("analyzed word",
		zap.String("word", surface),
		zap.Stringer("kind", kind),
		zap.Int("leaves", len(leaves)))
	return leaves, nil
}

// expand returns the successors of an open state in reverse visiting order,
// ready to be pushed on the stack.
func expand(w *ComplexWord) []*ComplexWord {
	if w.kind == Verb {
		if branch, rest := stripRover(w); branch != nil {
			return []*ComplexWord{rest, branch}
		}
	}

	slot := w.level - 1
	next := w.derive(w.stem)
	next.level = slot
	out := []*ComplexWord{next}

	if branch := stripSuffix(w, slot); branch != nil {
		out = append(out, branch)
	}
	if branch := stripApostropheOy(w); branch != nil {
		out = append(out, branch)
	}
	return out
}

// stripRover splits off a trailing {-be'} or {-qu'} not yet decided on.
// The branch keeps the current slot, since rovers do not occupy one; rest
// is the same word with that rover ruled out.
func stripRover(w *ComplexWord) (branch, rest *ComplexWord) {
	slot := w.level - 1
	switch {
	case w.negation.Unresolved() && strings.HasSuffix(w.stem, roverNegation) && w.stem != roverNegation:
		branch = w.derive(strings.TrimSuffix(w.stem, roverNegation))
		branch.negation = attachedAt(slot)
		if w.emphatic.at(slot) {
			// {-be'qu'}
			branch.negationFirst = true
		}
		rest = w.derive(w.stem)
		rest.negation = Rover{state: roverAbsent}
		return branch, rest
	case w.emphatic.Unresolved() && strings.HasSuffix(w.stem, roverEmphatic) && w.stem != roverEmphatic:
		branch = w.derive(strings.TrimSuffix(w.stem, roverEmphatic))
		branch.emphatic = attachedAt(slot)
		if w.negation.at(slot) {
			// {-qu'be'}
			branch.negationFirst = false
		}
		rest = w.derive(w.stem)
		rest.emphatic = Rover{state: roverAbsent}
		return branch, rest
	}
	return nil, nil
}

// stripSuffix removes the first suffix of the given slot that ends the stem
// and leaves something behind. {-oy} after a vowel is left to
// stripApostropheOy.
func stripSuffix(w *ComplexWord, slot int) *ComplexWord {
	table := verbSuffixes[:]
	if w.kind == Noun {
		table = nounSuffixes[:]
	}
	for i := 1; i < len(table[slot]); i++ {
		rest, ok := strings.CutSuffix(w.stem, table[slot][i])
		if !ok || rest == "" {
			continue
		}
		if w.kind == Noun && slot == NounType1 && i == nounSuffixOy && endsInVowel(rest) {
			continue
		}
		branch := w.derive(rest)
		branch.level = slot
		if w.kind == Noun {
			branch.nounSuffixes[slot] = i
		} else {
			branch.verbSuffixes[slot] = i
		}
		return branch
	}
	return nil
}

// stripApostropheOy handles {-oy} on a noun ending in a vowel, which is
// written {'oy}: {ghu'oy} may be {ghu} + {-oy} as well as {ghu'} + {-oy}.
func stripApostropheOy(w *ComplexWord) *ComplexWord {
	if w.kind != Noun || w.level != NounType1+1 {
		return nil
	}
	rest, ok := strings.CutSuffix(w.stem, "'oy")
	if !ok || !endsInVowel(rest) {
		return nil
	}
	branch := w.derive(rest)
	branch.level = 0
	branch.nounSuffixes[NounType1] = nounSuffixOy
	return branch
}

// reanalyze returns further states to explore from a finished leaf, in
// reverse visiting order.
func reanalyze(w *ComplexWord) []*ComplexWord {
	switch {
	case w.kind == Noun:
		if v := verbRootOfNoun(w); v != nil {
			return []*ComplexWord{v}
		}
	case w.IsBareWord():
		return adjectivalVerb(w)
	}
	return nil
}

// verbRootOfNoun re-parses a suffixed noun ending in {-wI'} or {-ghach} as a
// verb, so that the verb suffixes in front of the nominalizer get stripped
// too. Bare nouns are skipped since they are analyzed as verbs anyway.
func verbRootOfNoun(w *ComplexWord) *ComplexWord {
	if !w.hasNounSuffix() {
		return nil
	}
	for _, n := range nominalizers {
		if strings.HasSuffix(w.stem, n) {
			v := w.derive(w.stem)
			v.kind = Verb
			v.level = numVerbSlots
			return v
		}
	}
	return nil
}

// adjectivalVerb splits a type 5 noun suffix off a bare verb acting
// adjectivally, e.g. {QaQvaD}. A rover or {-Ha'} in front of the noun suffix
// is split off in a second leaf; {-Qo'} is not allowed there.
func adjectivalVerb(w *ComplexWord) []*ComplexWord {
	// None of the type 5 noun suffixes is a suffix of another, so at most
	// one matches.
	for i := 1; i < len(nounSuffixes[NounType5]); i++ {
		rest, ok := strings.CutSuffix(w.stem, nounSuffixes[NounType5][i])
		if !ok {
			continue
		}
		adj := NewComplexWord(rest, Verb)
		adj.level = 0
		adj.nounSuffixes[NounType5] = i
		adj.adjectival = true
		out := []*ComplexWord{adj}

		for _, m := range adjectivalMarkers {
			bare, ok := strings.CutSuffix(rest, m)
			if !ok {
				continue
			}
			r := adj.derive(bare)
			switch m {
			case roverNegation:
				r.negation = attachedAt(VerbUndo)
			case roverEmphatic:
				r.emphatic = attachedAt(VerbUndo)
			default:
				r.verbSuffixes[VerbUndo] = 1
			}
			out = append(out, r)
			break
		}
		return out
	}
	return nil
}
