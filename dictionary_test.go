package klingon

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

// mapStore is a Store over a fixed record list that counts lookups.
type mapStore struct {
	mu      sync.Mutex
	records []Record
	calls   map[string]int
	err     error
}

func (s *mapStore) Lookup(_ context.Context, name string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[name]++
	if s.err != nil {
		return nil, s.err
	}
	var out []Record
	for _, r := range s.records {
		if r.EntryName == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func testStore() *mapStore {
	return &mapStore{records: []Record{
		{ID: 1, EntryName: "Sop", PartOfSpeech: "v:t_c", Definition: "eat"},
		{ID: 2, EntryName: "puq", PartOfSpeech: "n", Definition: "child"},
		{ID: 3, EntryName: "ghaH", PartOfSpeech: "n:pro", Definition: "he, she"},
		{ID: 4, EntryName: "QaQ", PartOfSpeech: "v:is", Definition: "be good"},
		{ID: 5, EntryName: "ler", PartOfSpeech: "v:i_c", Definition: "be complete"},
		{ID: 6, EntryName: "Qapla'", PartOfSpeech: "excl", Definition: "success"},
		{ID: 7, EntryName: "wa'", PartOfSpeech: "n:num", Definition: "one"},
		{ID: 8, EntryName: "nuq", PartOfSpeech: "ques", Definition: "what"},
	}}
}

func matchIDs(matches []Match) []int64 {
	var ids []int64
	for _, m := range matches {
		ids = append(ids, m.Entry.ID)
	}
	return ids
}

func TestDictionaryLookup(t *testing.T) {
	dict := NewDictionary(testStore(), nil)
	tests := []struct {
		query string
		ids   []int64
		key   string
	}{
		{"Sop", []int64{1}, "Sop"},
		{"bISoptaHqu'", []int64{1}, "Sop:v"},
		{"bISoptaHqu’", []int64{1}, "Sop:v"},
		{"puqpu'", []int64{2}, "puq:n"},
		{"ghaHtaH", []int64{3}, "ghaH:v"},
		{"QaQvaD", []int64{4}, "QaQ:v:n5"},
		{"Qapla'", []int64{6}, "Qapla'"},
		{"wa'maH", []int64{7}, "wa':n:num"},
		{"Sop:v", []int64{1}, "Sop:v"},
		{"Sop:n", nil, ""},
		{"lervaD", nil, ""},
		{"bIghaH", nil, ""},
		{"", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches, err := dict.Lookup(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			ids := matchIDs(matches)
			if len(ids) != len(tt.ids) {
				t.Fatalf("got entries %v, want %v", ids, tt.ids)
			}
			for i := range ids {
				if ids[i] != tt.ids[i] {
					t.Errorf("got entries %v, want %v", ids, tt.ids)
				}
			}
			if len(matches) > 0 && matches[0].Key != tt.key {
				t.Errorf("Key = %q, want %q", matches[0].Key, tt.key)
			}
		})
	}
}

func TestDictionaryLookupAnalysis(t *testing.T) {
	dict := NewDictionary(testStore(), nil)
	matches, err := dict.Lookup(context.Background(), "bISoptaHqu'")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Analysis == nil {
		t.Fatalf("got %+v", matches)
	}
	a := matches[0].Analysis
	if a.VerbPrefix() != "bI-" || a.Stem() != "Sop" {
		t.Errorf("analysis = %s%s%s", a.VerbPrefixString(), a.Stem(), a.SuffixesString())
	}

	matches, err = dict.Lookup(context.Background(), "Sop:v")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].Analysis != nil {
		t.Errorf("exact query: got %+v", matches)
	}
}

func TestDictionaryStrict(t *testing.T) {
	dict := NewDictionary(testStore(), nil, WithLenient(false))
	matches, err := dict.Lookup(context.Background(), "Qapla'")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("strict lookup found %v", matchIDs(matches))
	}
}

func TestDictionaryCachesStoreLookups(t *testing.T) {
	st := testStore()
	dict := NewDictionary(st, nil)
	if _, err := dict.Lookup(context.Background(), "Sop"); err != nil {
		t.Fatal(err)
	}
	if n := st.calls["Sop"]; n != 1 {
		t.Errorf("store looked up Sop %d times, want 1", n)
	}
}

func TestDictionaryStoreError(t *testing.T) {
	boom := errors.New("boom")
	st := testStore()
	st.err = boom
	dict := NewDictionary(st, nil)
	if _, err := dict.Lookup(context.Background(), "Sop"); !errors.Is(err, boom) {
		t.Errorf("Lookup err = %v, want %v", err, boom)
	}
	if _, err := dict.LookupWords(context.Background(), []string{"Sop", "puq"}); !errors.Is(err, boom) {
		t.Errorf("LookupWords err = %v, want %v", err, boom)
	}
}

func TestDictionaryLookupWords(t *testing.T) {
	defer goleak.VerifyNone(t)

	dict := NewDictionary(testStore(), nil, WithWorkers(2))
	words := []string{"Sop", "puqpu'", "xyz", "ghaHtaH"}
	results, err := dict.LookupWords(context.Background(), words)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(words) {
		t.Fatalf("got %d results, want %d", len(results), len(words))
	}
	want := [][]int64{{1}, {2}, nil, {3}}
	for i, res := range results {
		if res.Word != words[i] {
			t.Errorf("results[%d].Word = %q, want %q", i, res.Word, words[i])
		}
		if got := matchIDs(res.Matches); len(got) != len(want[i]) || (len(got) > 0 && got[0] != want[i][0]) {
			t.Errorf("results[%d] entries = %v, want %v", i, got, want[i])
		}
	}

	results, err = dict.LookupText(context.Background(), "Qapla’! Sop")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || results[0].Word != "Qapla'" {
		t.Errorf("LookupText results = %+v", results)
	}
}
