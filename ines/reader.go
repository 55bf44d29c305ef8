package ines

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

// ReadHeader reads and decodes the header at the start of r. Only HeaderSize
// bytes are consumed.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Header{}, fmt.Errorf("ines: reading header: %w", err)
	}
	return Decode(buf[:n])
}

// ReadFile reads the header of the ROM file at path.
func ReadFile(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	h, err := ReadHeader(f)
	if err != nil {
		return Header{}, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("Read header from %s: %v", path, h)
	return h, nil
}
