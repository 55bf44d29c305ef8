package integration

import (
	"bytes"
	"os"
	"testing"

	"github.com/jyane/inesinfo/ines"
	"github.com/jyane/inesinfo/ui"
)

func TestSample1(t *testing.T) {
	h, err := ines.ReadFile("sample1.nes")
	if err != nil {
		t.Fatalf("Failed to read sample1.nes: %v", err)
	}
	if n, ok := h.PRGROMPages(); !ok || n != 2 {
		t.Errorf("PRGROMPages got=(%d, %v), want=(2, true)", n, ok)
	}
	if n, ok := h.CHRROMPages(); !ok || n != 1 {
		t.Errorf("CHRROMPages got=(%d, %v), want=(1, true)", n, ok)
	}
	var got bytes.Buffer
	if err := ui.NewPrinter(&got, ui.FormatText).Print(ui.NewReport("sample1.nes", h)); err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile("sample1.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != string(want) {
		t.Errorf("Got a header dump:\n%s\nwant:\n%s", got.String(), want)
	}
}
