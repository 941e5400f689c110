package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bastiangx/phoneword/internal/utils"
	"github.com/bastiangx/phoneword/pkg/mnemonic"
	"github.com/charmbracelet/log"
)

// BatchRunner converts the numbers of each data file in turn.
type BatchRunner struct {
	converter mnemonic.IConverter
	printer   *Printer
}

// NewBatchRunner creates a runner printing through printer.
func NewBatchRunner(converter mnemonic.IConverter, printer *Printer) *BatchRunner {
	return &BatchRunner{converter: converter, printer: printer}
}

// Run processes every file. A file that cannot be read is logged and
// skipped; the joined per-file errors are returned once all files are done.
func (b *BatchRunner) Run(paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := b.runFile(path); err != nil {
			log.Errorf("%v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *BatchRunner) runFile(path string) error {
	if !utils.IsReadableFile(path) {
		return fmt.Errorf("data file: %s is missing or not readable: %w", path, mnemonic.ErrUnreadable)
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("data file: %s: %w", path, err)
	}
	defer file.Close()

	log.Debugf("Processing data file: %s", path)
	results, err := b.converter.ProcessReader(file)
	if err != nil {
		return fmt.Errorf("data file: %s: %w", path, err)
	}
	return b.printer.Print(results)
}
