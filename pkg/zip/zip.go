package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file inside an export archive.
type Entry struct {
	Name string
	MIME string
	Data []byte
}

// Archive bundles the entries into a single zip blob. Construction either
// completes fully or fails; a partial archive is never returned.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: finalize: %w", err)
	}
	return buf.Bytes(), nil
}
