package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DocumentStore archives uploaded documents (purchase requests, delivery
// notes, signed receipts) under root/{date}/{filename}. The core only keeps
// the returned relative path — the store itself is an opaque collaborator.
type DocumentStore struct {
	root string
}

func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

// Archive writes blob to {root}/{date}/{filename} and returns the path to
// persist on the owning record, e.g. "/archive/2026-08-31/po-scan.pdf".
// date must be formatted YYYY-MM-DD; filename must not contain separators.
func (s *DocumentStore) Archive(blob []byte, date, filename string) (string, error) {
	if date == "" || filename == "" {
		return "", fmt.Errorf("docstore: date and filename are required")
	}
	if strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("docstore: invalid filename %q", filename)
	}

	dir := filepath.Join(s.root, date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("docstore: create dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, filename), blob, 0o644); err != nil {
		return "", fmt.Errorf("docstore: write file: %w", err)
	}

	return "/archive/" + date + "/" + filename, nil
}

// Resolve maps an archived path back to the absolute file location.
func (s *DocumentStore) Resolve(archivePath string) string {
	return filepath.Join(s.root, strings.TrimPrefix(archivePath, "/archive/"))
}
