package ui

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func validity(b bool) string {
	if b {
		return "VALID"
	}
	return "INVALID"
}

// rows returns the key/value pairs shown for a report in table format.
func (r Report) rows() [][]string {
	var rows [][]string
	if r.Path != "" {
		rows = append(rows, []string{"File", r.Path})
	}
	return append(rows,
		[]string{"Magic Bytes", fmt.Sprintf("%s [%s]", r.Magic, validity(r.MagicValid))},
		[]string{"PRG ROM Size", r.PRGROM},
		[]string{"CHR ROM Size", r.CHRROM},
		[]string{"Flags", r.Flags},
		[]string{"PRG RAM Size", prgRAMSize(r)},
		[]string{"TV System (a)", r.TVSystemA},
		[]string{"TV System (b)", r.TVSystemB},
		[]string{"PRG RAM Present", yesNo(r.PRGRAMPresent)},
		[]string{"No Bus Conflicts", yesNo(r.BoardHasNoBusConflicts)},
		[]string{"Padding Bytes", fmt.Sprintf("%s [%s]", r.Tail, validity(r.TailValid))},
	)
}

func printTable(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		table := tablewriter.NewWriter(w)
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator(":")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("  ")
		table.SetNoWhiteSpace(true)
		table.AppendBulk(r.rows())
		table.Render()
	}
	return nil
}
