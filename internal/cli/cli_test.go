package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/phoneword/pkg/config"
	"github.com/bastiangx/phoneword/pkg/dictionary"
	"github.com/bastiangx/phoneword/pkg/mnemonic"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestConverter() *mnemonic.Converter {
	return mnemonic.NewConverter(dictionary.LoadLines([]string{"a", "b", "me", "call", "compute"}))
}

func TestInputHandlerStopsAtExit(t *testing.T) {
	var out bytes.Buffer
	input := strings.NewReader("(2)255.63\n\n  4(2)255.63  \nplease exit now\n2255634\n")
	handler := NewInputHandler(newTestConverter(), NewPrinter(&out), config.DefaultConfig().CLI, input, false)

	if err := handler.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"225563", "CALL-ME", "4225563", "4-CALL-ME"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "2255634") {
		t.Errorf("output contains a number typed after exit:\n%s", got)
	}
}

func TestInputHandlerEndOfInput(t *testing.T) {
	var out bytes.Buffer
	cfg := config.CliConfig{ExitCommand: "quit"}
	handler := NewInputHandler(newTestConverter(), NewPrinter(&out), cfg, strings.NewReader("63"), false)

	if err := handler.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !strings.Contains(out.String(), "ME") {
		t.Errorf("output missing ME:\n%s", out.String())
	}
}

func TestPrinter(t *testing.T) {
	var out bytes.Buffer
	err := NewPrinter(&out).Print(map[string][]string{
		"44225563": {},
		"2":        {"A", "B", "2"},
	})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "number 2 are (3)") {
		t.Errorf("first header = %q", lines[0])
	}
	if !strings.Contains(lines[4], "number 44225563 are (0)") {
		t.Errorf("second header = %q", lines[4])
	}
	if !strings.Contains(lines[5], "(none)") {
		t.Errorf("empty marker = %q", lines[5])
	}
}

func TestBatchRunnerSkipsUnreadable(t *testing.T) {
	var out bytes.Buffer
	runner := NewBatchRunner(newTestConverter(), NewPrinter(&out))

	missing := filepath.Join(t.TempDir(), "missing.txt")
	err := runner.Run([]string{missing, "testdata/numbers.txt", t.TempDir()})
	if !errors.Is(err, mnemonic.ErrUnreadable) {
		t.Errorf("Run() error = %v, want ErrUnreadable", err)
	}
	if err != nil && !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("Run() error = %v, want the missing file named", err)
	}

	got := out.String()
	for _, want := range []string{"CALL-ME", "4-CALL-ME"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBatchRunnerAllReadable(t *testing.T) {
	var out bytes.Buffer
	runner := NewBatchRunner(newTestConverter(), NewPrinter(&out))
	if err := runner.Run([]string{"testdata/numbers.txt"}); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
