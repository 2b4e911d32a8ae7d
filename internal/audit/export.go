// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
)

// ExportFormatVersion is written into every export document.
const ExportFormatVersion = 1

// ExportDocument is the JSON payload inside an export.
type ExportDocument struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Entries    []Entry   `json:"entries"`
}

// Export writes every entry as zstd-compressed JSON to w and returns the
// number of entries written.
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	entries, err := s.List(ctx, 0)
	if err != nil {
		return 0, err
	}
	doc := ExportDocument{Version: ExportFormatVersion, ExportedAt: s.now().UTC(), Entries: entries}
	if err := WriteExport(w, doc); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// WriteExport encodes doc as zstd-compressed JSON.
func WriteExport(w io.Writer, doc ExportDocument) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(doc); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return zw.Close()
}

// ReadExport decodes a document produced by WriteExport.
func ReadExport(r io.Reader) (ExportDocument, error) {
	var doc ExportDocument
	zr, err := zstd.NewReader(r)
	if err != nil {
		return doc, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return doc, fmt.Errorf("failed to decode export: %w", err)
	}
	return doc, nil
}
