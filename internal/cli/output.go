package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/party/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled is set from terminal detection and can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Bold returns s wrapped in bold ANSI codes if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// Checkbox renders a done flag as "[x]" (green) or "[ ]".
func Checkbox(done bool) string {
	if done {
		return Green("[x]")
	}
	return "[ ]"
}

// Money formats an amount as dollars with two decimals.
func Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// PriceCell formats an item price for a table, with a gray dash when the item
// has not been priced yet.
func PriceCell(p model.Price) string {
	amount, ok := p.Value()
	if !ok {
		return Gray("-")
	}
	return Money(amount)
}

// DefaultMaxNameWidth is the default maximum visible width for name columns.
const DefaultMaxNameWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows       [][]string
	colWidths  []int
	maxWidths  map[int]int  // optional per-column max visible width
	alignRight map[int]bool // columns padded on the left
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AlignRight right-aligns a column, for amounts.
func (t *Table) AlignRight(col int) {
	if t.alignRight == nil {
		t.alignRight = make(map[int]bool)
	}
	t.alignRight[col] = true
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	// Widths ignore ANSI codes and are capped by SetMaxWidth
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}

	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			padding := strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			switch {
			case t.alignRight[i]:
				parts = append(parts, padding+col)
			case i < len(t.colWidths)-1:
				parts = append(parts, col+padding)
			default:
				// Last column doesn't need padding
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// (counted within the limit) when anything was cut. ANSI codes before the cut
// are kept and a reset is appended. Below a width of 3 the text is cut
// without an ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	if maxWidth < len(ellipsis) {
		return cutVisible(s, maxWidth)
	}

	out := cutVisible(s, maxWidth-len(ellipsis)) + ellipsis
	if strings.ContainsRune(s, '\033') {
		out += colorReset
	}
	return out
}

// cutVisible returns the prefix of s holding n visible characters.
func cutVisible(s string, n int) string {
	var b strings.Builder
	visible := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case visible >= n:
			return b.String()
		default:
			visible++
		}
		b.WriteRune(r)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}

	return width
}
