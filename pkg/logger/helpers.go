package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Icons and symbols for different log types
const (
	IconSuccess = "✅"
	IconWarning = "⚠️"
	IconArrow   = "→"
)

var colorHeading = color.New(color.FgCyan, color.Bold)

func noColor() bool {
	if l, ok := defaultLogger.(*logger); ok {
		return l.out.noColor
	}
	return false
}

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// LogSection writes a visual section separator to w
func LogSection(w io.Writer, title string) {
	line := strings.Repeat("=", 50)
	if noColor() {
		_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", line, title, line)
		return
	}
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", colorHeading.Sprint(line), colorHeading.Sprint(title), colorHeading.Sprint(line))
}

// LogKeyValue prints a key-value pair
func LogKeyValue(key string, value interface{}) {
	if noColor() {
		fmt.Printf("%s: %v\n", key, value)
		return
	}
	fmt.Printf("%s: %v\n", color.CyanString(key), value)
}

// Table represents a simple table for console output
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// Print writes the table to stdout
func (t *Table) Print() {
	t.Fprint(os.Stdout)
}

// Fprint writes the table to w
func (t *Table) Fprint(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			if i < len(widths) {
				fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
			}
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	writeRow(t.headers)
	separators := make([]string, len(widths))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)
	for _, row := range t.rows {
		writeRow(row)
	}
}
