// Package cli handles the interactive and batch data file modes of phoneword.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/phoneword/pkg/config"
	"github.com/bastiangx/phoneword/pkg/mnemonic"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// InputHandler collects phone numbers line by line until the exit command is
// typed or input ends, then converts the whole batch at once.
type InputHandler struct {
	converter   mnemonic.IConverter
	printer     *Printer
	input       io.Reader
	exitCommand string
	prompt      string
	interactive bool
}

// NewInputHandler handles initialization of the InputHandler.
// Prompts are only printed when interactive is set.
func NewInputHandler(converter mnemonic.IConverter, printer *Printer, cfg config.CliConfig, input io.Reader, interactive bool) *InputHandler {
	exitCommand := cfg.ExitCommand
	if exitCommand == "" {
		exitCommand = config.DefaultConfig().CLI.ExitCommand
	}
	return &InputHandler{
		converter:   converter,
		printer:     printer,
		input:       input,
		exitCommand: exitCommand,
		prompt:      cfg.Prompt,
		interactive: interactive,
	}
}

// Start reads numbers until a line containing the exit command, then prints
// the renderings of everything collected.
func (h *InputHandler) Start() error {
	if h.interactive {
		log.Info("No data file specified. Taking input from STDIN.")
		log.Infof("Please enter one phone number per line. Type %q if you want to end:", h.exitCommand)
	}

	numbers, err := h.collect()
	if err != nil {
		return err
	}
	if h.interactive {
		log.Info("Completed taking all numbers as input. Please find the result below:")
	}
	return h.printer.Print(h.converter.Process(numbers))
}

func (h *InputHandler) collect() ([]string, error) {
	reader := bufio.NewReader(h.input)
	var numbers []string
	for {
		if h.interactive && h.prompt != "" {
			log.Print(h.prompt)
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if strings.Contains(line, h.exitCommand) {
			return numbers, nil
		}
		if line != "" {
			numbers = append(numbers, line)
		}
		if err == io.EOF {
			log.Debug("Input ended without exit command")
			return numbers, nil
		}
	}
}
