package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/klingon-assistant/klingon"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

type analysisRow struct {
	Kind    string `json:"kind"`
	Key     string `json:"key"`
	Parts   string `json:"parts"`
	Number  string `json:"number,omitempty"`
	Surface string `json:"surface"`
}

func analysisRowOf(w *klingon.ComplexWord, lenient bool) analysisRow {
	r := analysisRow{
		Kind:    w.Kind().String(),
		Key:     w.Key(lenient),
		Parts:   w.VerbPrefixString() + w.Stem() + w.SuffixesString(),
		Surface: w.Surface(),
	}
	if w.IsNumberLike() {
		r.Number = strings.TrimSpace(w.NumberRoot() + " " + w.NumberModifier() + " " + w.NumberSuffix())
	}
	return r
}

func renderAnalyses(w io.Writer, format string, leaves []*klingon.ComplexWord, lenient bool) error {
	rows := make([]analysisRow, 0, len(leaves))
	for _, leaf := range leaves {
		rows = append(rows, analysisRowOf(leaf, lenient))
	}
	if format == "json" {
		return renderJSON(w, rows)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"kind", "key", "parts", "number"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Kind, r.Key, r.Parts, r.Number})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d analyses)\n", len(rows))
	return nil
}

type matchRow struct {
	Word         string `json:"word"`
	Key          string `json:"key"`
	Entry        string `json:"entry"`
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
	Parts        string `json:"parts,omitempty"`
}

func renderLookup(w io.Writer, format string, results []klingon.WordResult) error {
	var rows []matchRow
	for _, res := range results {
		for _, m := range res.Matches {
			r := matchRow{
				Word:         res.Word,
				Key:          m.Key,
				Entry:        m.Entry.Name,
				PartOfSpeech: m.Entry.PartOfSpeech,
				Definition:   m.Entry.Definition,
			}
			if m.Analysis != nil {
				r.Parts = m.Analysis.VerbPrefixString() + m.Analysis.Stem() + m.Analysis.SuffixesString()
			}
			rows = append(rows, r)
		}
	}
	if format == "json" {
		return renderJSON(w, rows)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(no entries found)")
		return nil
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"word", "entry", "pos", "definition", "parts"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Word, r.Entry, r.PartOfSpeech, r.Definition, r.Parts})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d entries)\n", len(rows))
	return nil
}

type field struct {
	name  string
	value any
}

func renderEntry(w io.Writer, format string, e *klingon.Entry) error {
	fields := []field{
		{"name", e.Name},
		{"base", e.BasePartOfSpeech().Name()},
		{"transitivity", e.Transitivity().String()},
		{"transitivity confirmed", e.TransitivityConfirmed()},
		{"pronoun", e.IsPronoun()},
		{"name entry", e.IsName()},
		{"number", e.IsNumber()},
		{"prefix", e.IsPrefix()},
		{"suffix", e.IsSuffix()},
		{"homophone", e.Homophone()},
		{"slang", e.IsSlang()},
		{"regional", e.IsRegional()},
		{"archaic", e.IsArchaic()},
		{"url", e.URL()},
	}
	if e.IsSentence() {
		fields = append(fields, field{"sentence query", e.SentenceTypeQuery()})
	}

	if format == "json" {
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			out[strings.ReplaceAll(f.name, " ", "_")] = f.value
		}
		return renderJSON(w, out)
	}
	t := newTable(w)
	for _, f := range fields {
		t.AppendRow(table.Row{f.name, f.value})
	}
	t.Render()
	return nil
}
