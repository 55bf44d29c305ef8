package ui

import (
	"fmt"
	"io"
	"strings"
)

// Format is an output format for reports.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses s into a Format, empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid output format: %q (valid: text, table, json, yaml)", s)
}

func (f Format) String() string {
	return string(f)
}

// Printer writes reports to out in one format.
type Printer struct {
	out    io.Writer
	format Format
}

func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format}
}

// Print writes all reports. JSON and YAML always produce a list.
func (p *Printer) Print(reports ...Report) error {
	switch p.format {
	case FormatText:
		return printText(p.out, reports)
	case FormatTable:
		return printTable(p.out, reports)
	case FormatJSON:
		return printJSON(p.out, reports)
	case FormatYAML:
		return printYAML(p.out, reports)
	}
	return fmt.Errorf("unsupported output format: %q", p.format)
}
