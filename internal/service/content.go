// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AttachmentContent is one file to attach, supplied either as a local path
// or as an in-memory payload. Exactly one of Path and Bytes must be set.
type AttachmentContent struct {
	// Name is the user-visible display name carried in the x-file-name
	// header. Optional for path-backed content (defaults to the base name),
	// required for in-memory payloads.
	Name string

	// Path is a local file path. The file is read fully into memory before
	// any network call.
	Path string

	// Bytes is an in-memory payload.
	Bytes []byte
}

// open resolves the content to a display name and a byte reader. Path-backed
// content is read fully and released here so no file handle stays open
// across network calls.
func (c AttachmentContent) open() (string, io.Reader, error) {
	hasPath := c.Path != ""
	hasBytes := c.Bytes != nil

	if hasPath == hasBytes {
		return "", nil, ErrAttachmentContent
	}

	if hasPath {
		data, err := os.ReadFile(c.Path)
		if err != nil {
			return "", nil, fmt.Errorf("read attachment file: %w", err)
		}
		name := c.Name
		if name == "" {
			name = filepath.Base(c.Path)
		}
		return name, bytes.NewReader(data), nil
	}

	if c.Name == "" {
		return "", nil, fmt.Errorf("%w: in-memory payload requires a display name", ErrAttachmentContent)
	}
	return c.Name, bytes.NewReader(c.Bytes), nil
}
