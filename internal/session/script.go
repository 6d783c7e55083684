package session

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Script is a named list of commands replayed against a session.
type Script struct {
	Name  string   `yaml:"name"`
	Steps []string `yaml:"steps"`
}

// LoadScript reads a YAML gesture script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML gesture script.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &sc, nil
}

// Run applies every step of sc in order and stops at the first error.
func (s *Session) Run(sc *Script) error {
	s.log.Info("running script", zap.String("name", sc.Name), zap.Int("steps", len(sc.Steps)))
	for i, line := range sc.Steps {
		if _, err := s.Apply(line); err != nil {
			return fmt.Errorf("step %d (%q): %w", i+1, line, err)
		}
	}
	return nil
}
