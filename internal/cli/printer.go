package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/bastiangx/phoneword/internal/utils"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes conversion results, one number block at a time in
// ascending number order.
type Printer struct {
	w      io.Writer
	header lipgloss.Style
	word   lipgloss.Style
	muted  lipgloss.Style
}

// NewPrinter creates a printer. Styles degrade to plain text when w is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		header: renderer.NewStyle().Bold(true),
		word: renderer.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		muted: renderer.NewStyle().Faint(true),
	}
}

// Print writes each number followed by its renderings, one per line.
func (p *Printer) Print(results map[string][]string) error {
	numbers := make([]string, 0, len(results))
	for number := range results {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	for _, number := range numbers {
		renderings := results[number]
		header := fmt.Sprintf("List of possible words for number %s are (%s):", number, utils.FormatWithCommas(len(renderings)))
		if _, err := fmt.Fprintln(p.w, p.header.Render(header)); err != nil {
			return err
		}
		if len(renderings) == 0 {
			if _, err := fmt.Fprintln(p.w, p.muted.Render("(none)")); err != nil {
				return err
			}
			continue
		}
		for _, rendering := range renderings {
			if _, err := fmt.Fprintln(p.w, p.word.Render(rendering)); err != nil {
				return err
			}
		}
	}
	return nil
}
