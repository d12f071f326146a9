package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BreedRecord is one dataset entry: a breed and the ontology trait
// predicates it satisfies.
type BreedRecord struct {
	Name   string   `json:"name" yaml:"name"`
	Traits []string `json:"traits" yaml:"traits"`
}

type datasetDoc struct {
	Breeds []BreedRecord `json:"breeds" yaml:"breeds"`
}

// ParseDataset parses a breed dataset document.
// The document may be JSON or YAML, and either a bare list of records or an
// object with a "breeds" list.
func ParseDataset(data []byte) ([]BreedRecord, error) {
	var records []BreedRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var doc datasetDoc
	if err := json.Unmarshal(data, &doc); err == nil && doc.Breeds != nil {
		return doc.Breeds, nil
	}

	if err := yaml.Unmarshal(data, &records); err == nil && records != nil {
		return records, nil
	}

	var ydoc datasetDoc
	if err := yaml.Unmarshal(data, &ydoc); err == nil && ydoc.Breeds != nil {
		return ydoc.Breeds, nil
	}

	return nil, fmt.Errorf("%w: expected a list of breed records or an object with a \"breeds\" list", ErrMalformedDataset)
}

// ParseDatasetFile reads and parses a breed dataset from disk.
func ParseDatasetFile(path string) ([]BreedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(data)
}
