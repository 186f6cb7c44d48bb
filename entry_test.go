package klingon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestDecodeEntryPredicates(t *testing.T) {
	tests := []struct {
		name, pos string
		check     func(e *Entry) bool
	}{
		{"Sop", "v:t_c", func(e *Entry) bool {
			return e.IsVerb() && e.Transitivity() == Transitive && e.TransitivityConfirmed()
		}},
		{"Sop", "v:t", func(e *Entry) bool { return e.Transitivity() == Transitive && !e.TransitivityConfirmed() }},
		{"QaQ", "v:is", func(e *Entry) bool { return e.Transitivity() == Stative && e.TransitivityConfirmed() }},
		{"pegh", "v:ambi", func(e *Entry) bool { return e.Transitivity() == Ambitransitive && e.TransitivityConfirmed() }},
		{"ler", "v:i_c", func(e *Entry) bool { return e.Transitivity() == Intransitive && e.TransitivityConfirmed() }},
		{"ghaH", "n:pro", func(e *Entry) bool { return e.IsNoun() && e.IsPronoun() && !e.IsName() }},
		{"ghaH", "v:pro", func(e *Entry) bool { return !e.IsPronoun() }},
		{"wa'", "n:num", func(e *Entry) bool { return e.IsNumber() }},
		{"qeylIS", "n:name", func(e *Entry) bool { return e.IsName() && !e.ShowHomophone() }},
		{"bI-", "v:pref", func(e *Entry) bool { return e.IsPrefix() && !e.IsVerb() }},
		{"bI-", "v", func(e *Entry) bool { return e.IsPrefix() }},
		{"bI-", "n", func(e *Entry) bool { return !e.IsPrefix() }},
		{"-taH", "v", func(e *Entry) bool { return e.IsSuffix() && !e.IsVerb() }},
		{"-pu'", "n:suff", func(e *Entry) bool { return e.IsSuffix() }},
		{"nuq", "ques", func(e *Entry) bool { return e.IsMisc() && !e.IsNoun() }},
		{"petaQ", "excl:epithet", func(e *Entry) bool { return e.IsEpithet() }},
		{"mu'qaD", "n:slang,reg,archaic", func(e *Entry) bool { return e.IsSlang() && e.IsRegional() && e.IsArchaic() }},
		{"Duj", "n:inv,weap,anim,food", func(e *Entry) bool {
			return e.IsInvective() && e.IsWeaponsRelated() && e.IsAnimal() && e.IsFoodRelated()
		}},
		{"ra'wI'", "n:alt,fic,hyp,extcan,nolink,indent", func(e *Entry) bool {
			return e.IsAlternativeSpelling() && e.IsFictionalEntity() && e.IsHypothetical() &&
				e.IsExtendedCanon() && e.DoNotLink() && e.IsIndented()
		}},
		{"jan", "n:inhpl", func(e *Entry) bool { return e.IsInherentPlural() && !e.IsPlural() }},
		{"chaH", "n:pro,plural", func(e *Entry) bool { return e.IsPlural() }},
		{"Qapla'", "excl:noanki,klcp1", func(e *Entry) bool { return e.BasePartOfSpeech() == POSExclamation }},
	}
	for _, tt := range tests {
		log, logs := observedLogger()
		e := DecodeEntry(log, tt.name, tt.pos)
		if !tt.check(e) {
			t.Errorf("DecodeEntry(%q, %q): predicate failed", tt.name, tt.pos)
		}
		if logs.Len() != 0 {
			t.Errorf("DecodeEntry(%q, %q) logged %d messages", tt.name, tt.pos, logs.Len())
		}
	}
}

func TestDecodeEntryHomophones(t *testing.T) {
	tests := []struct {
		pos  string
		num  int
		show bool
	}{
		{"n", -1, true},
		{"n:2", 2, true},
		{"n:5h", 5, false},
		{"n:name,3", 3, false},
	}
	for _, tt := range tests {
		e := DecodeEntry(nil, "chal", tt.pos)
		if e.Homophone() != tt.num || e.ShowHomophone() != tt.show {
			t.Errorf("DecodeEntry(%q): homophone %d show %v, want %d %v",
				tt.pos, e.Homophone(), e.ShowHomophone(), tt.num, tt.show)
		}
	}
}

func TestDecodeEntryDiagnostics(t *testing.T) {
	log, logs := observedLogger()

	e := DecodeEntry(log, "Sop", "")
	if !e.BasePartOfSpeechIsUnknown() || logs.Len() != 0 {
		t.Errorf("empty part of speech: unknown=%v logs=%d", e.BasePartOfSpeechIsUnknown(), logs.Len())
	}

	e = DecodeEntry(log, "Sop", "???")
	if !e.BasePartOfSpeechIsUnknown() || logs.Len() != 0 {
		t.Errorf("???: unknown=%v logs=%d", e.BasePartOfSpeechIsUnknown(), logs.Len())
	}

	e = DecodeEntry(log, "Sop", "verb:t")
	if !e.BasePartOfSpeechIsUnknown() {
		t.Error("verb: base should be unknown")
	}
	if e.Transitivity() != Transitive {
		t.Error("attributes should still be decoded after an unknown base")
	}
	warns := logs.FilterMessage("unrecognized part of speech").TakeAll()
	if len(warns) != 1 || warns[0].Level != zapcore.WarnLevel {
		t.Fatalf("got %v, want one warning", warns)
	}
	if got := warns[0].ContextMap()["entry"]; got != "Sop" {
		t.Errorf("warning entry field = %v", got)
	}

	e = DecodeEntry(log, "Sop", "v:t_c,bogus")
	if !e.IsVerb() || !e.TransitivityConfirmed() {
		t.Error("known parts should survive an unknown attribute")
	}
	errs := logs.FilterMessage("unrecognized attribute").TakeAll()
	if len(errs) != 1 || errs[0].Level != zapcore.ErrorLevel {
		t.Fatalf("got %v, want one error", errs)
	}
	if got := errs[0].ContextMap()["attribute"]; got != "bogus" {
		t.Errorf("error attribute field = %v", got)
	}

	// Trailing empty attributes are dropped; an empty one before others is not.
	logs.TakeAll()
	e = DecodeEntry(log, "mu'", "n:slang,,")
	if !e.IsSlang() || logs.Len() != 0 {
		t.Errorf("n:slang,,: slang=%v logs=%d", e.IsSlang(), logs.Len())
	}
	DecodeEntry(log, "mu'", "n:,slang")
	if n := logs.FilterMessage("unrecognized attribute").Len(); n != 1 {
		t.Errorf("n:,slang logged %d errors, want 1", n)
	}
}

func TestDecodeEntryURL(t *testing.T) {
	log, logs := observedLogger()
	e := DecodeEntry(log, "boQwI'", "url:https://example.org/boqwi")
	if !e.IsURL() {
		t.Fatal("IsURL() = false")
	}
	if got := e.URL(); got != "https://example.org/boqwi" {
		t.Errorf("URL() = %q", got)
	}
	if logs.Len() != 0 {
		t.Errorf("logged %d messages", logs.Len())
	}
}

func TestSentenceTypeQuery(t *testing.T) {
	tests := map[string]string{
		"sen":       "*:sen:phr",
		"sen:eu":    "*:sen:eu",
		"sen:mv":    "*:sen:mv",
		"sen:idiom": "*:sen:idiom",
		"sen:nt":    "*:sen:nt",
		"sen:prov":  "*:sen:prov",
		"sen:Ql":    "*:sen:Ql",
		"sen:rej":   "*:sen:rej",
		"sen:rp":    "*:sen:rp",
		"sen:sp":    "*:sen:sp",
		"sen:toast": "*:sen:toast",
		"sen:lyr":   "*:sen:lyr",
		"sen:bc":    "*:sen:bc",
		"sen:joke":  "*:sen:joke",
		"sen:phr":   "*:sen:phr",
	}
	for pos, want := range tests {
		if got := DecodeEntry(nil, "x", pos).SentenceTypeQuery(); got != want {
			t.Errorf("SentenceTypeQuery(%q) = %q, want %q", pos, got, want)
		}
	}
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(nil, "Sop:v:t_c,1@@bI-, Sop, -taH")
	if q.Name != "Sop" || q.PartOfSpeech != "v:t_c,1" {
		t.Errorf("ParseQuery: name %q pos %q", q.Name, q.PartOfSpeech)
	}
	if q.Homophone() != 1 || q.Transitivity() != Transitive {
		t.Errorf("ParseQuery: homophone %d transitivity %v", q.Homophone(), q.Transitivity())
	}
	var names []string
	for _, c := range q.ComponentEntries(nil) {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"bI-", "Sop", "-taH"}, names); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}

	q = ParseQuery(nil, "Qapla'")
	if q.Name != "Qapla'" || !q.BasePartOfSpeechIsUnknown() {
		t.Errorf("bare query: name %q unknown %v", q.Name, q.BasePartOfSpeechIsUnknown())
	}
}
