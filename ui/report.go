package ui

import (
	"fmt"

	"github.com/jyane/inesinfo/ines"
)

// Report is a printable snapshot of a decoded header.
type Report struct {
	Path                   string `json:"path,omitempty" yaml:"path,omitempty"`
	Magic                  string `json:"magic" yaml:"magic"`
	MagicValid             bool   `json:"magic_valid" yaml:"magic_valid"`
	PRGROMUnits            uint8  `json:"prg_rom_units" yaml:"prg_rom_units"`
	PRGROM                 string `json:"prg_rom" yaml:"prg_rom"`
	CHRROMUnits            uint8  `json:"chr_rom_units" yaml:"chr_rom_units"`
	CHRROM                 string `json:"chr_rom" yaml:"chr_rom"`
	Flags                  string `json:"flags" yaml:"flags"`
	PRGRAMKB               uint32 `json:"prg_ram_kb" yaml:"prg_ram_kb"`
	PRGRAMCompat           bool   `json:"prg_ram_compat" yaml:"prg_ram_compat"`
	TVSystemA              string `json:"tv_system_a" yaml:"tv_system_a"`
	TVSystemB              string `json:"tv_system_b" yaml:"tv_system_b"`
	PRGRAMPresent          bool   `json:"prg_ram_present" yaml:"prg_ram_present"`
	BoardHasNoBusConflicts bool   `json:"no_bus_conflicts" yaml:"no_bus_conflicts"`
	IgnoredBytes           string `json:"ignored_bytes" yaml:"ignored_bytes"`
	Tail                   string `json:"tail" yaml:"tail"`
	TailValid              bool   `json:"tail_valid" yaml:"tail_valid"`
}

// hexBytes formats b as "4E 45 53 1A".
func hexBytes(b []byte) string {
	return fmt.Sprintf("% X", b)
}

// NewReport builds a Report for the header read from path. path may be empty.
func NewReport(path string, h ines.Header) Report {
	magic := h.Magic()
	flags := h.Flags()
	ignored := h.IgnoredBytes()
	tail := h.Tail()
	return Report{
		Path:                   path,
		Magic:                  hexBytes(magic[:]),
		MagicValid:             h.IsMagicValid(),
		PRGROMUnits:            h.PRGROMUnits(),
		PRGROM:                 h.PRGROMDescription(),
		CHRROMUnits:            h.CHRROMUnits(),
		CHRROM:                 h.CHRROMDescription(),
		Flags:                  hexBytes(flags[:]),
		PRGRAMKB:               h.PRGRAMKB(),
		PRGRAMCompat:           h.IsPRGRAMCompatDefault(),
		TVSystemA:              h.TVSystemA().String(),
		TVSystemB:              h.TVSystemB().String(),
		PRGRAMPresent:          h.PRGRAMPresent(),
		BoardHasNoBusConflicts: h.BoardHasNoBusConflicts(),
		IgnoredBytes:           hexBytes(ignored[:]),
		Tail:                   hexBytes(tail[:]),
		TailValid:              h.IsTailValid(),
	}
}

// Valid reports whether both the magic and the padding bytes are as expected.
func (r Report) Valid() bool {
	return r.MagicValid && r.TailValid
}
