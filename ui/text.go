package ui

import (
	"fmt"
	"io"
	"strings"
)

const cautionNotice = `Bytes 7-15 are ignored by many emulators and are either empty or populated with messages on many ROMs.
Interpret with caution...`

func prgRAMSize(r Report) string {
	if r.PRGRAMCompat {
		return "8KB Compatible"
	}
	return fmt.Sprintf("%dKB", r.PRGRAMKB)
}

// writeText prints a report in the layout of the classic iNES header dump.
func writeText(w io.Writer, r Report) error {
	var sb strings.Builder
	sb.WriteString("INES ROM Parser\n")
	if r.Path != "" {
		fmt.Fprintf(&sb, "File: %s\n", r.Path)
	}
	magicStatus := "[VALID]"
	if !r.MagicValid {
		magicStatus = "[INVALID!]"
	}
	fmt.Fprintf(&sb, "Magic Bytes: %s %s\n", r.Magic, magicStatus)
	fmt.Fprintf(&sb, "PRG ROM Size: %s\n", r.PRGROM)
	fmt.Fprintf(&sb, "CHR ROM Size: %s\n", r.CHRROM)
	fmt.Fprintf(&sb, "\n%s\n\n", cautionNotice)
	fmt.Fprintf(&sb, "Tail Bytes: %s\n\n", r.IgnoredBytes)
	fmt.Fprintf(&sb, "PRG RAM Size: %s\n", prgRAMSize(r))
	fmt.Fprintf(&sb, "TV System Type (a): %s\n", r.TVSystemA)
	fmt.Fprintf(&sb, "TV System Type (b): %s\n", r.TVSystemB)
	fmt.Fprintf(&sb, "PRG RAM Present: %s\n", yesNo(r.PRGRAMPresent))
	fmt.Fprintf(&sb, "Board Has No Conflicts: %s\n", yesNo(r.BoardHasNoBusConflicts))
	fmt.Fprintf(&sb, "Padding Bytes: %s [%s]\n", r.Tail, validity(r.TailValid))
	_, err := io.WriteString(w, sb.String())
	return err
}

func printText(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeText(w, r); err != nil {
			return err
		}
	}
	return nil
}
