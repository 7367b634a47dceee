package app

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Settings is the content of an optional HCL settings file. Unset
// attributes leave the corresponding Config field alone; unknown attributes
// are rejected by the decoder.
type Settings struct {
	Input        *string  `hcl:"input,optional"`
	InputFormat  *string  `hcl:"input_format,optional"`
	OutputFormat *string  `hcl:"output_format,optional"`
	CellPaths    []string `hcl:"cell_paths,optional"`
	LogLevel     *string  `hcl:"log_level,optional"`
	LogFormat    *string  `hcl:"log_format,optional"`
	FailOnError  *bool    `hcl:"fail_on_error,optional"`
}

// LoadSettings parses and decodes a settings file.
func LoadSettings(path string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var s Settings
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	return &s, nil
}

// Apply copies every setting into cfg unless explicit reports that the
// matching command-line flag was given.
func (s *Settings) Apply(cfg *Config, explicit func(flag string) bool) {
	setString := func(dst *string, src *string, flag string) {
		if src != nil && !explicit(flag) {
			*dst = *src
		}
	}
	setString(&cfg.InputPath, s.Input, "input")
	setString(&cfg.InputFormat, s.InputFormat, "input-format")
	setString(&cfg.OutputFormat, s.OutputFormat, "output-format")
	setString(&cfg.LogLevel, s.LogLevel, "log-level")
	setString(&cfg.LogFormat, s.LogFormat, "log-format")

	if s.CellPaths != nil && !explicit("cell-paths") {
		cfg.CellPaths = s.CellPaths
	}
	if s.FailOnError != nil && !explicit("fail-on-error") {
		cfg.FailOnError = *s.FailOnError
	}
}
