package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Printer writes command results in the configured output format.
type Printer struct {
	out    io.Writer
	format string
	ok     *color.Color
	warn   *color.Color
	fail   *color.Color
}

// NewPrinter creates a printer for format. Colors are used only when out
// is the terminal's stdout.
func NewPrinter(out io.Writer, format string) *Printer {
	if format == "" {
		format = OutputTable
	}
	colored := out == io.Writer(os.Stdout) && !color.NoColor
	return &Printer{
		out:    out,
		format: format,
		ok:     newColor(color.FgHiGreen, colored),
		warn:   newColor(color.FgHiYellow, colored),
		fail:   newColor(color.FgHiRed, colored),
	}
}

func newColor(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Structured reports whether the format is JSON or YAML.
func (p *Printer) Structured() bool {
	return p.format != OutputTable
}

// Print writes v. In table format render draws the table; a nil render
// falls back to indented JSON.
func (p *Printer) Print(v any, render func(t *Table)) error {
	switch p.format {
	case OutputJSON:
		return p.json(v)
	case OutputYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	if render == nil {
		return p.json(v)
	}
	t := &Table{w: tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)}
	render(t)
	return t.w.Flush()
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Done reports a completed action. Table format prints the message;
// structured formats print v.
func (p *Printer) Done(v any, format string, args ...any) error {
	if p.Structured() {
		return p.Print(v, nil)
	}
	_, err := p.ok.Fprintf(p.out, format+"\n", args...)
	return err
}

// Notef prints a success note in table format only.
func (p *Printer) Notef(format string, args ...any) {
	if !p.Structured() {
		p.ok.Fprintf(p.out, format+"\n", args...)
	}
}

// Warnf prints a highlighted note in table format only.
func (p *Printer) Warnf(format string, args ...any) {
	if !p.Structured() {
		p.warn.Fprintf(p.out, format+"\n", args...)
	}
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.fail.Fprintf(p.out, format+"\n", args...)
}

// Table is a tab-aligned text table.
type Table struct {
	w *tabwriter.Writer
}

// Header writes the column titles in upper case.
func (t *Table) Header(cols ...string) {
	upper := make([]string, len(cols))
	for i, c := range cols {
		upper[i] = strings.ToUpper(c)
	}
	fmt.Fprintln(t.w, strings.Join(upper, "\t"))
}

// Row writes one line. Empty values are shown as "-".
func (t *Table) Row(cols ...any) {
	cells := make([]string, len(cols))
	for i, c := range cols {
		s := fmt.Sprint(c)
		if s == "" {
			s = "-"
		}
		cells[i] = s
	}
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

// KV writes a two column key/value listing.
func (t *Table) KV(pairs ...any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Row(fmt.Sprint(pairs[i])+":", pairs[i+1])
	}
}

func yesNo(v int) string {
	if v != 0 {
		return "yes"
	}
	return "no"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
