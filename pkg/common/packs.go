package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eng618/nonogram-builder/pkg/model"
)

// LoadPackRegistry loads packs.json.
func LoadPackRegistry(filePath string) (*model.PackRegistry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read packs.json: %w", err)
	}

	var registry model.PackRegistry
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&registry); err != nil {
		return nil, fmt.Errorf("failed to parse packs.json: %w", err)
	}

	return &registry, nil
}

// SavePackRegistry writes packs.json, formatted and via an atomic rename.
func SavePackRegistry(filePath string, registry *model.PackRegistry) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal packs.json: %w", err)
	}

	tmpFile := filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	Verbose("Updated packs.json: %s", filePath)
	return nil
}

// UpdatePackRegistry sets a pack's puzzle ID list in the registry.
func UpdatePackRegistry(filePath string, packID int, puzzleIDs []int) error {
	registry, err := LoadPackRegistry(filePath)
	if err != nil {
		return err
	}

	var found bool
	for i, p := range registry.Packs {
		if p.ID == packID {
			registry.Packs[i].Puzzles = puzzleIDs
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("pack %d not found in registry", packID)
	}

	return SavePackRegistry(filePath, registry)
}

// GetPackByID returns a pack by its ID.
func GetPackByID(registry *model.PackRegistry, packID int) (*model.Pack, error) {
	for i := range registry.Packs {
		if registry.Packs[i].ID == packID {
			return &registry.Packs[i], nil
		}
	}
	return nil, fmt.Errorf("pack %d not found", packID)
}
