package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"detailpage/internal/domain"
)

// Store persists named state snapshots as JSON files under a base directory.
// It is the server-side analog of the editor's single local-storage slot:
// write on explicit save, read on explicit load, nothing automatic.
type Store struct {
	basePath string
}

// NewStore initializes a Store rooted at basePath.
func NewStore(basePath string) (*Store, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("snapshot: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: ensure base path: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *Store) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Save serializes the state into the named slot, replacing any previous
// snapshot under the same name.
func (s *Store) Save(ctx context.Context, slot string, data domain.ProductData) error {
	if s == nil {
		return errors.New("snapshot: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.slotPath(slot)
	if err != nil {
		return err
	}
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: encode state: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("snapshot: write file: %w", err)
	}
	return nil
}

// Load reads the named slot and merges it into the current defaults, so a
// snapshot written by an older schema falls back to defaults for any field
// it does not carry. The only shape check is "is it a JSON object".
func (s *Store) Load(ctx context.Context, slot string) (domain.ProductData, error) {
	zero := domain.DefaultProductData()
	if s == nil {
		return zero, errors.New("snapshot: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	path, err := s.slotPath(slot)
	if err != nil {
		return zero, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, domain.ErrNotFound
		}
		return zero, fmt.Errorf("snapshot: read file: %w", err)
	}
	trimmed := strings.TrimSpace(string(blob))
	if !strings.HasPrefix(trimmed, "{") {
		return zero, domain.ErrInvalidSnapshot
	}
	restored := domain.DefaultProductData()
	if err := json.Unmarshal(blob, &restored); err != nil {
		return zero, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if restored.Options == nil {
		restored.Options = []domain.ProductOption{}
	}
	return restored, nil
}

// slotPath maps a slot name to a file path, rejecting names that would
// escape the base directory.
func (s *Store) slotPath(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return "", domain.ErrInvalidSlot
	}
	slot = strings.ReplaceAll(slot, "\\", "/")
	cleaned := filepath.Clean(slot)
	if cleaned == "." || strings.HasPrefix(cleaned, "../") || strings.Contains(cleaned, "/") {
		return "", domain.ErrInvalidSlot
	}
	return filepath.Join(s.basePath, cleaned+".json"), nil
}
