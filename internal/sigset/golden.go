// Package sigset loads end-to-end golden-transcript fixtures: a table of
// signature -> expected-inputs/expected-tokens scenarios. Keeping the table
// as YAML data instead of a Go literal separates fixtures from test code,
// and gives gopkg.in/yaml.v3 -- otherwise only a transitive indirect
// dependency of testify -- a real call site in this repository.
package sigset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExpectedVar is one `(type, name)` pair a scenario expects to find in the
// generator's Inputs list, in order.
type ExpectedVar struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// Scenario is one golden end-to-end transcript: a signature plus the
// generation call's arguments, and the Inputs list / emitted-code tokens a
// correct implementation must produce.
type Scenario struct {
	Name            string        `yaml:"name"`
	Signature       string        `yaml:"signature"`
	IterName        string        `yaml:"iter_name"`
	ValueName       string        `yaml:"value_name"`
	OOMBlock        string        `yaml:"oom_block"`
	ExpectedInputs  []ExpectedVar `yaml:"expected_inputs"`
	ExpectedTokens  []string      `yaml:"expected_tokens"`
	ContainerDepth  int           `yaml:"container_depth"`
}

// Load reads and parses a golden-fixture YAML file like testdata/golden.yaml.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sigset: reading %s: %w", path, err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("sigset: parsing %s: %w", path, err)
	}
	return scenarios, nil
}
