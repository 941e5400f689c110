package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeStats map[string]int

func (f fakeStats) Stats() map[string]int { return f }

func TestObserveBatch(t *testing.T) {
	r := NewRecorder(nil)

	r.ObserveBatch(map[string][]string{
		"225563":   {"CALL-ME"},
		"44225563": {},
		"2":        {"A", "B", "2"},
	}, time.Millisecond)

	if got := testutil.ToFloat64(r.numbers); got != 3 {
		t.Errorf("numbers = %v, want 3", got)
	}
	if got := testutil.ToFloat64(r.renderings); got != 4 {
		t.Errorf("renderings = %v, want 4", got)
	}
	if got := testutil.ToFloat64(r.unrendered); got != 1 {
		t.Errorf("unrendered = %v, want 1", got)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.ObserveBatch(map[string][]string{"2": {"A"}}, time.Second)
	r.Rejected()
}

func TestDictionaryCollector(t *testing.T) {
	c := &DictionaryCollector{source: fakeStats{"totalWords": 9, "maxWordLength": 7}}
	if got := testutil.CollectAndCount(c); got != 2 {
		t.Errorf("CollectAndCount() = %d, want 2", got)
	}

	expected := `
# HELP phoneword_dictionary Loaded dictionary statistics by kind
# TYPE phoneword_dictionary gauge
phoneword_dictionary{kind="maxWordLength"} 7
phoneword_dictionary{kind="totalWords"} 9
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("CollectAndCompare() error = %v", err)
	}
}

func TestHandler(t *testing.T) {
	r := NewRecorder(fakeStats{"totalWords": 1})
	r.Rejected()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{"phoneword_requests_rejected_total 1", `phoneword_dictionary{kind="totalWords"} 1`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
