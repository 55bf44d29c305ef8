package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jyane/inesinfo/ui"
)

func writeROM(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeROM(t, dir, "good.nes", []byte{0x4E, 0x45, 0x53, 0x1A, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	dirty := writeROM(t, dir, "dirty.nes", []byte{0x4E, 0x45, 0x53, 0x1A, 0x02, 0x01, 0x01, 'D', 'i', 's', 'k', 'D', 'u', 'd', 'e', '!'})
	short := writeROM(t, dir, "short.nes", []byte{0x4E, 0x45, 0x53})
	for _, test := range []struct {
		name    string
		paths   []string
		strict  bool
		want    error
		reports int
	}{
		{"good", []string{good}, false, nil, 1},
		{"good strict", []string{good}, true, nil, 1},
		{"dirty", []string{good, dirty}, false, nil, 2},
		{"dirty strict", []string{good, dirty}, true, errInvalid, 2},
		{"short", []string{short, good}, false, errReadFailed, 1},
		{"missing", []string{filepath.Join(dir, "missing.nes")}, false, errReadFailed, 0},
	} {
		var out bytes.Buffer
		err := run(test.paths, ui.FormatText, test.strict, &out)
		if !errors.Is(err, test.want) {
			t.Errorf("%v, run error want=%v, got=%v", test.name, test.want, err)
		}
		if got := strings.Count(out.String(), "INES ROM Parser"); got != test.reports {
			t.Errorf("%v, reports want=%d, got=%d", test.name, test.reports, got)
		}
	}
}
