package dataset

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Provider supplies the price buckets a slider maps its handles onto.
type Provider interface {
	Load() ([]int, error)
	Name() string
}

// Static returns a fixed set of buckets. Useful for configuration values and
// tests.
type Static struct {
	Values []int
}

func (s *Static) Name() string { return "static" }

func (s *Static) Load() ([]int, error) {
	if err := Validate(s.Values); err != nil {
		return nil, err
	}
	return slices.Clone(s.Values), nil
}

// File reads buckets from a YAML document holding either a bare list or a
// mapping with a "buckets" key.
type File struct {
	Path string
}

func (f *File) Name() string { return "file" }

func (f *File) Load() ([]int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	var values []int
	if err := yaml.Unmarshal(data, &values); err != nil {
		var doc struct {
			Buckets []int `yaml:"buckets"`
		}
		if err2 := yaml.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("parse dataset file: %w", err)
		}
		values = doc.Buckets
	}

	if err := Validate(values); err != nil {
		return nil, fmt.Errorf("validate dataset file: %w", err)
	}
	return values, nil
}
