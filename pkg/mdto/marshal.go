package mdto

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Write validates e and writes it as an MDTO document to w. Nothing is
// written when validation fails.
func Write(w io.Writer, e *Entity, opts ...Option) error {
	if err := Validate(e, opts...); err != nil {
		return err
	}
	doc, err := Wrap(e)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// Marshal validates e and returns it as an MDTO document.
func Marshal(e *Entity, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, e, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(e *Entity, opts ...Option) (string, error) {
	data, err := Marshal(e, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save validates e and writes it to path. The file is not created or
// truncated when validation fails.
func Save(path string, e *Entity, opts ...Option) error {
	data, err := Marshal(e, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
