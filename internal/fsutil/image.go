package fsutil

import (
	"bytes"
	"errors"
	"io"
	"os"
)

var imageSignatures = []struct {
	kind  string
	magic []byte
}{
	{"JPG", []byte{0xff, 0xd8, 0xff}},
	{"PNG", []byte{0x89, 0x50, 0x4e}},
	{"GIF", []byte{0x47, 0x49, 0x46}},
}

// ImageKind sniffs the first bytes of the file at path and returns "JPG",
// "PNG" or "GIF", or "" when the signature is not a known image.
func ImageKind(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, 3)
	if _, err := io.ReadFull(f, head); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", nil
		}
		return "", err
	}

	for _, sig := range imageSignatures {
		if bytes.Equal(head, sig.magic) {
			return sig.kind, nil
		}
	}
	return "", nil
}
