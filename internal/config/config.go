// Package config loads pattern suites: named patterns together with
// strings each one must accept or reject.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Suite struct {
	Patterns []Pattern `yaml:"patterns"`
}

type Pattern struct {
	Name   string   `yaml:"name"`
	Expr   string   `yaml:"expr"`
	Accept []string `yaml:"accept"`
	Reject []string `yaml:"reject"`
}

// Load reads and validates the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a suite, rejecting unknown fields.
func Parse(data []byte) (*Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode suite: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) Validate() error {
	if len(s.Patterns) == 0 {
		return errors.New("suite has no patterns")
	}
	seen := make(map[string]bool, len(s.Patterns))
	for i, p := range s.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern %d: missing name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("pattern %q: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Expr == "" {
			return fmt.Errorf("pattern %q: missing expr", p.Name)
		}
	}
	return nil
}
