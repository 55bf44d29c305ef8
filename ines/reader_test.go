package ines

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device not ready")
}

func TestReadHeader(t *testing.T) {
	rom := append(append([]byte{}, validHeader...), bytes.Repeat([]byte{0xEA}, 0x4000)...)
	r := bytes.NewReader(rom)
	h, err := ReadHeader(r)
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if want := mustDecode(t, validHeader); h != want {
		t.Errorf("ReadHeader got=%v, want=%v", h, want)
	}
	if got, want := r.Len(), 0x4000; got != want {
		t.Errorf("bytes left after ReadHeader got=%d, want=%d", got, want)
	}
}

func TestReadHeaderShort(t *testing.T) {
	for _, n := range []int{0, 1, 15} {
		_, err := ReadHeader(bytes.NewReader(validHeader[:n]))
		var te *TruncatedError
		if !errors.As(err, &te) {
			t.Fatalf("%d bytes: want *TruncatedError, got=%v", n, err)
		}
		if te.Got != n {
			t.Errorf("%d bytes: TruncatedError.Got want=%d, got=%d", n, n, te.Got)
		}
	}
}

func TestReadHeaderIOError(t *testing.T) {
	_, err := ReadHeader(failingReader{})
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if errors.Is(err, ErrTruncated) {
		t.Errorf("I/O error reported as truncation: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.nes")
	if err := os.WriteFile(good, validHeader, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(good); err != nil {
		t.Errorf("ReadFile(%s) failed: %v", good, err)
	}

	short := filepath.Join(dir, "short.nes")
	if err := os.WriteFile(short, validHeader[:4], 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(short); !errors.Is(err, ErrTruncated) {
		t.Errorf("ReadFile(%s) want ErrTruncated, got=%v", short, err)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.nes")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) want os.ErrNotExist, got=%v", err)
	}
}
