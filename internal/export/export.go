// Package export writes lookup tables and spacetime fields in text, YAML or
// JSON form.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tri-ca/internal/automaton"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatYAML, FormatJSON}

// ParseFormat validates s as a Format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, yaml or json)", s)
}

// TableEntry is one row of a lookup table.
type TableEntry struct {
	Self  uint8 `yaml:"self" json:"self"`
	Left  uint8 `yaml:"left" json:"left"`
	Value uint8 `yaml:"value" json:"value"`
}

// Document is the serialised form of an evolution run.
type Document struct {
	Rule   int          `yaml:"rule" json:"rule"`
	Length int          `yaml:"length" json:"length"`
	Time   int          `yaml:"time" json:"time"`
	Table  []TableEntry `yaml:"table" json:"table"`
	Field  []string     `yaml:"field" json:"field"`
}

// NewDocument captures a run of a over field.
func NewDocument(a *automaton.Automaton, field automaton.Field) Document {
	rows := make([]string, len(field))
	for i, row := range field {
		rows[i] = digits(row)
	}
	return Document{
		Rule:   a.Rule(),
		Length: a.Length(),
		Time:   len(field) - 1,
		Table:  Entries(a.LookupTable()),
		Field:  rows,
	}
}

// Entries flattens table in rule-digit order.
func Entries(table automaton.LookupTable) []TableEntry {
	out := make([]TableEntry, 0, len(automaton.Neighborhoods))
	for _, n := range automaton.Neighborhoods {
		out = append(out, TableEntry{Self: n.Self, Left: n.Left, Value: table[n]})
	}
	return out
}

// ParseRow converts a digit string such as "10210" into a configuration.
func ParseRow(s string) (automaton.Configuration, error) {
	s = strings.TrimSpace(s)
	row := make(automaton.Configuration, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '2' {
			return nil, fmt.Errorf("%w: character %q at offset %d is not 0, 1 or 2", automaton.ErrInvalidArgument, r, i)
		}
		row = append(row, uint8(r-'0'))
	}
	return row, nil
}

// WriteField writes doc in the given format. The text format is the field
// alone, one row of digits per line.
func WriteField(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatText:
		for _, row := range doc.Field {
			if _, err := fmt.Fprintln(w, row); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteTable writes table in the given format.
func WriteTable(w io.Writer, f Format, rule int, table automaton.LookupTable) error {
	entries := Entries(table)
	switch f {
	case FormatText:
		if _, err := fmt.Fprintf(w, "rule %d\n", rule); err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "(%d,%d) -> %d\n", e.Self, e.Left, e.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML, FormatJSON:
		doc := struct {
			Rule  int          `yaml:"rule" json:"rule"`
			Table []TableEntry `yaml:"table" json:"table"`
		}{rule, entries}
		if f == FormatYAML {
			return writeYAML(w, doc)
		}
		return writeJSON(w, doc)
	}
	return fmt.Errorf("unknown format %q", f)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func digits(row automaton.Configuration) string {
	b := make([]byte, len(row))
	for i, v := range row {
		b[i] = '0' + v
	}
	return string(b)
}
