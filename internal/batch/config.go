// Package batch runs yaml-defined suites of cipher jobs concurrently.
package batch

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Op identifies what a job does with its input text.
type Op string

const (
	// OpEncode runs the input through a Transformer as plaintext.
	OpEncode Op = "encode"

	// OpDecode runs the input through a Transformer as ciphertext.
	OpDecode Op = "decode"

	// OpGuess estimates the shift of the input by letter frequency.
	OpGuess Op = "guess"
)

// Job is one unit of work in a suite.
type Job struct {
	Name string `yaml:"name"`
	Op   Op     `yaml:"op"`

	// Text is the inline input. The pointer distinguishes an omitted key
	// from an empty string: a job with neither text nor a file fails with
	// cipher.ErrInvalidArgument.
	Text *string `yaml:"text,omitempty"`

	// File names an input file, resolved against the runner's base
	// directory. Ignored when Text is present.
	File string `yaml:"file,omitempty"`
}

// Suite is an ordered list of jobs loaded from a yaml file.
type Suite struct {
	Name string `yaml:"name,omitempty"`
	Jobs []Job  `yaml:"jobs"`
}

// LoadSuite reads and parses a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}
	return &suite, nil
}
