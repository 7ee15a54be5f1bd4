package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"secretsanta/internal/models"

	"github.com/google/logger"
)

// JSONStore keeps the draw results in two JSON files: the full records,
// read by the lookup page, and the public records, safe to share.
type JSONStore struct {
	FullPath   string
	PublicPath string
}

// NewJSONStore creates a JSONStore for the given file paths.
func NewJSONStore(fullPath, publicPath string) *JSONStore {
	return &JSONStore{FullPath: fullPath, PublicPath: publicPath}
}

// Save writes both files. A failure on one file does not stop the other from
// being written; every failure is logged and returned joined.
func (s *JSONStore) Save(access []models.AccessRecord, public []models.PublicRecord) error {
	var errs []error

	if err := writeJSON(s.FullPath, access); err != nil {
		logger.Errorf("Error saving '%s': %v", s.FullPath, err)
		errs = append(errs, err)
	} else {
		logger.Infof("Records saved to '%s'", s.FullPath)
	}

	if err := writeJSON(s.PublicPath, public); err != nil {
		logger.Errorf("Error saving '%s': %v", s.PublicPath, err)
		errs = append(errs, err)
	} else {
		logger.Infof("Public records saved to '%s'", s.PublicPath)
	}

	return errors.Join(errs...)
}

// writeJSON writes v as indented UTF-8 JSON without escaping non-ASCII or HTML characters.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FindByCode returns the full record whose access code matches code,
// ignoring case. A missing or malformed file is treated as no match.
func (s *JSONStore) FindByCode(code string) (*models.AccessRecord, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, false
	}

	data, err := os.ReadFile(s.FullPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warningf("Could not read '%s': %v", s.FullPath, err)
		}
		return nil, false
	}

	// Decode entry by entry so a single bad element does not hide the rest.
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warningf("'%s' is not a JSON array: %v", s.FullPath, err)
		return nil, false
	}

	for _, raw := range entries {
		var rec models.AccessRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if strings.ToUpper(rec.AccessCode) == code {
			return &rec, true
		}
	}
	return nil, false
}
