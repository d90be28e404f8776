package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureCollection is the district boundary document. Geometries are
// kept as raw JSON so they travel through untouched; only the
// properties bag is read and annotated.
type FeatureCollection struct {
	Type     string          `json:"type"`
	Name     string          `json:"name,omitempty"`
	CRS      json.RawMessage `json:"crs,omitempty"`
	Features []*Feature      `json:"features"`
}

type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// LocalName returns the local-script district name carried by the
// boundary document ("sggnm" property).
func (f *Feature) LocalName() string {
	name, _ := f.Properties["sggnm"].(string)
	return name
}

// LoadFeatureCollection reads the boundary document fresh from disk.
// The document is small and request volume is low, so there is no
// process-level caching of the parsed form.
func LoadFeatureCollection(path string) (*FeatureCollection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary document %s: %w", path, err)
	}

	var doc FeatureCollection
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse boundary document %s: %w", path, err)
	}
	return &doc, nil
}
