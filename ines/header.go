package ines

import (
	"fmt"
	"strings"
)

// https://www.nesdev.org/wiki/INES

const (
	HeaderSize   = 16 // The valid INES header has 16 bytes
	prgROMPageKB = 16
	chrROMPageKB = 8
	prgRAMUnitKB = 8
	maxROMPages  = 64
)

const msDOSEOF byte = 0x1A

var magic = [4]byte{'N', 'E', 'S', msDOSEOF}

// Flags 10 bits.
const (
	tvSystemMask      byte = 0x03
	prgRAMAbsent      byte = 0x10
	noBusConflictsBit byte = 0x20
)

// TVSystem is a broadcast timing convention a cartridge targets.
type TVSystem int

const (
	NTSC TVSystem = iota
	PAL
	DualCompatible
	UnknownTVSystem
)

func (s TVSystem) String() string {
	switch s {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	case DualCompatible:
		return "Dual Compatible"
	}
	return "(Unknown)"
}

// Header is a decoded iNES header. The zero value is not a valid header, use
// Decode.
type Header struct {
	magic       [4]byte
	prgROMUnits byte    // https://www.nesdev.org/wiki/INES#Header
	chrROMUnits byte    // https://www.nesdev.org/wiki/INES#Header
	flags       [5]byte // flags 6 to 10
	tail        [5]byte // unused padding
}

// Decode reads a header from the first 16 bytes of buf. Anything after that is
// ignored. The only error is a buffer shorter than HeaderSize, everything else
// is reported through the Header's methods.
func Decode(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, &TruncatedError{Needed: HeaderSize, Got: len(buf)}
	}
	var h Header
	copy(h.magic[:], buf[0:4])
	h.prgROMUnits = buf[4]
	h.chrROMUnits = buf[5]
	copy(h.flags[:], buf[6:11])
	copy(h.tail[:], buf[11:16])
	return h, nil
}

func (h Header) Magic() [4]byte { return h.magic }
func (h Header) PRGROMUnits() byte { return h.prgROMUnits }
func (h Header) CHRROMUnits() byte { return h.chrROMUnits }
func (h Header) Flags() [5]byte { return h.flags }
func (h Header) Tail() [5]byte { return h.tail }

// IsMagicValid checks whether the header starts with "NES" followed by MS-DOS EOF.
func (h Header) IsMagicValid() bool {
	return h.magic == magic
}

// romPages returns the page count for a size code, 0 and anything above 64
// are unknown.
func romPages(code byte) (int, bool) {
	if code == 0 || int(code) > maxROMPages {
		return 0, false
	}
	return int(code), true
}

func describeROM(code byte, pageKB int) string {
	n, ok := romPages(code)
	if !ok {
		return "(Unknown)"
	}
	return fmt.Sprintf("(%dx%dkbpages)", n, pageKB)
}

// PRGROMPages returns the number of 16KB PRG-ROM pages.
func (h Header) PRGROMPages() (int, bool) {
	return romPages(h.prgROMUnits)
}

// CHRROMPages returns the number of 8KB CHR-ROM pages.
func (h Header) CHRROMPages() (int, bool) {
	return romPages(h.chrROMUnits)
}

// PRGROMDescription describes the PRG-ROM size, e.g. "(2x16kbpages)".
func (h Header) PRGROMDescription() string {
	return describeROM(h.prgROMUnits, prgROMPageKB)
}

// CHRROMDescription describes the CHR-ROM size, e.g. "(1x8kbpages)".
func (h Header) CHRROMDescription() string {
	return describeROM(h.chrROMUnits, chrROMPageKB)
}

// IsPRGRAMCompatDefault reports whether flags 8 is 0, which means 8KB for
// compatibility rather than no RAM.
func (h Header) IsPRGRAMCompatDefault() bool {
	return h.flags[2] == 0
}

// PRGRAMKB returns the PRG-RAM size in KB.
// https://www.nesdev.org/wiki/INES#Flags_8
func (h Header) PRGRAMKB() uint32 {
	if h.IsPRGRAMCompatDefault() {
		return prgRAMUnitKB
	}
	return uint32(h.flags[2]) * prgRAMUnitKB
}

// TVSystemA decodes flags 9 as a whole byte.
// https://www.nesdev.org/wiki/INES#Flags_9
func (h Header) TVSystemA() TVSystem {
	switch h.flags[3] {
	case 0:
		return NTSC
	case 1:
		return PAL
	}
	return UnknownTVSystem
}

// TVSystemB decodes the low two bits of flags 10. It is independent of
// TVSystemA and the two may disagree.
// https://www.nesdev.org/wiki/INES#Flags_10
func (h Header) TVSystemB() TVSystem {
	switch h.flags[4] & tvSystemMask {
	case 0:
		return NTSC
	case 1:
		return PAL
	}
	return DualCompatible
}

// PRGRAMPresent is true when bit 4 of flags 10 is clear.
func (h Header) PRGRAMPresent() bool {
	return h.flags[4]&prgRAMAbsent == 0
}

// BoardHasNoBusConflicts is true when bit 5 of flags 10 is set.
//
// nesdev documents this bit as "board has bus conflicts"; the reported sense
// here is the one the header dump tools print as "Board Has No Conflicts".
func (h Header) BoardHasNoBusConflicts() bool {
	return h.flags[4]&noBusConflictsBit != 0
}

// IsTailValid checks bytes 11-15 are all zero.
func (h Header) IsTailValid() bool {
	for _, b := range h.tail {
		if b != 0 {
			return false
		}
	}
	return true
}

// IgnoredBytes returns bytes 7-15. Many emulators ignore them and ROM tools
// often wrote messages there ("DiskDude!").
func (h Header) IgnoredBytes() [9]byte {
	var b [9]byte
	copy(b[:4], h.flags[1:])
	copy(b[4:], h.tail[:])
	return b
}

func (h Header) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "magic=% X", h.magic[:])
	if !h.IsMagicValid() {
		sb.WriteString(" (invalid)")
	}
	fmt.Fprintf(&sb, ", prg=%s, chr=%s, flags=% X, tail=% X",
		h.PRGROMDescription(), h.CHRROMDescription(), h.flags[:], h.tail[:])
	return sb.String()
}
