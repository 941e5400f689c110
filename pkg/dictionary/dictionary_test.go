package dictionary

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func loadTestWords(t *testing.T) *Dictionary {
	t.Helper()
	dict, err := LoadFile("testdata/words.txt")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	return dict
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		word string
		want string
	}{
		{"ABC", "222"},
		{"DEF", "333"},
		{"GHI", "444"},
		{"JKL", "555"},
		{"MNO", "666"},
		{"PQRS", "7777"},
		{"TUV", "888"},
		{"WXYZ", "9999"},
		{"CALL", "2255"},
		{"call", "2255"},
		{"COMPUTE", "2667883"},
		{"A-1", "200"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			if got := Encode(tc.word); got != tc.want {
				t.Errorf("Encode(%q) = %q, want %q", tc.word, got, tc.want)
			}
		})
	}
}

func TestLoadCountsAttempts(t *testing.T) {
	dict := loadTestWords(t)

	// a b me ME call Call compute: "m.e." and "c-a-l-l" repeat a cleaned candidate.
	if got := dict.TotalWordCount(); got != 7 {
		t.Errorf("TotalWordCount() = %d, want 7", got)
	}
	if got := dict.MaxWordLength(); got != 7 {
		t.Errorf("MaxWordLength() = %d, want 7", got)
	}

	stats := dict.Stats()
	if stats["entries"] != 5 {
		t.Errorf("entries = %d, want 5", stats["entries"])
	}
	if stats["keys"] != 4 {
		t.Errorf("keys = %d, want 4", stats["keys"])
	}
}

func TestLookup(t *testing.T) {
	dict := loadTestWords(t)

	testCases := []struct {
		key  string
		want []string
	}{
		{"2", []string{"A", "B"}},
		{"63", []string{"ME"}},
		{"2255", []string{"CALL"}},
		{"2667883", []string{"COMPUTE"}},
		{"22", []string{}},
		{"", []string{}},
		{"2892287287628376476484272636734646565727223423223444422", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			got := dict.Lookup(tc.key)
			if got == nil {
				t.Fatalf("Lookup(%q) returned nil", tc.key)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	dict := LoadLines([]string{"a", "b"})
	words := dict.Lookup("2")
	words[0] = "Z"
	if got := dict.Lookup("2"); got[0] != "A" {
		t.Errorf("Lookup() after caller mutation = %v, want first word A", got)
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	first := loadTestWords(t)
	second := loadTestWords(t)

	for _, key := range []string{"2", "63", "2255", "2667883", "9"} {
		if !reflect.DeepEqual(first.Lookup(key), second.Lookup(key)) {
			t.Errorf("Lookup(%q) differs between loads: %v vs %v", key, first.Lookup(key), second.Lookup(key))
		}
	}
	if first.TotalWordCount() != second.TotalWordCount() {
		t.Errorf("TotalWordCount() differs: %d vs %d", first.TotalWordCount(), second.TotalWordCount())
	}
}

func TestLoadStripsNonLetters(t *testing.T) {
	dict := LoadLines([]string{"don't", "café", "über"})

	if got := dict.Lookup(Encode("DONT")); !reflect.DeepEqual(got, []string{"DONT"}) {
		t.Errorf("Lookup(DONT) = %v", got)
	}
	if got := dict.Lookup(Encode("CAF")); !reflect.DeepEqual(got, []string{"CAF"}) {
		t.Errorf("Lookup(CAF) = %v", got)
	}
	if got := dict.Lookup(Encode("BER")); !reflect.DeepEqual(got, []string{"BER"}) {
		t.Errorf("Lookup(BER) = %v", got)
	}
}

func TestVisitPrefixes(t *testing.T) {
	dict := LoadLines([]string{"a", "b", "call", "ball", "me"})

	var keys []string
	var words [][]string
	err := dict.VisitPrefixes("225563", func(key string, ws []string) error {
		keys = append(keys, key)
		words = append(words, ws)
		return nil
	})
	if err != nil {
		t.Fatalf("VisitPrefixes() error = %v", err)
	}

	wantKeys := []string{"2", "2255"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("visited keys = %v, want %v", keys, wantKeys)
	}
	wantWords := [][]string{{"A", "B"}, {"CALL", "BALL"}}
	if !reflect.DeepEqual(words, wantWords) {
		t.Errorf("visited words = %v, want %v", words, wantWords)
	}
}

func TestVisitPrefixesStops(t *testing.T) {
	dict := LoadLines([]string{"a", "call"})
	stop := errors.New("stop")

	calls := 0
	err := dict.VisitPrefixes("2255", func(string, []string) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("VisitPrefixes() error = %v, want %v", err, stop)
	}
	if calls != 1 {
		t.Errorf("visitor called %d times, want 1", calls)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.txt")
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("LoadFile() error = %v, want ErrUnreadable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadReaderFailure(t *testing.T) {
	_, err := Load(iotest.ErrReader(errors.New("disk gone")))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Load() error = %v, want ErrUnreadable", err)
	}
}

func TestValidate(t *testing.T) {
	empty, err := Load(strings.NewReader("123\n!!\n\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !errors.Is(empty.Validate(), ErrEmpty) {
		t.Errorf("Validate() = %v, want ErrEmpty", empty.Validate())
	}

	if err := loadTestWords(t).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadDefault(t *testing.T) {
	dict, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if err := dict.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	found := false
	for _, w := range dict.Lookup("2255") {
		if w == "CALL" {
			found = true
		}
	}
	if !found {
		t.Errorf("default dictionary missing CALL under 2255: %v", dict.Lookup("2255"))
	}
}
