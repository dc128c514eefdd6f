// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: session Config, defaults and HCL decoding.

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvcolor/coloring"
)

// Defaults used by DefaultConfig.
const (
	DefaultGraphsDir = "DIMACS_Graphs_Instances"
	DefaultLogFile   = "results.log"
)

// Sentinel errors for session configuration.
var (
	// ErrNoAlgorithms indicates a configuration that selects no algorithm.
	ErrNoAlgorithms = errors.New("session: no algorithms configured")

	// ErrDuplicateInstance indicates two instances with the same name.
	ErrDuplicateInstance = errors.New("session: duplicate instance")

	// ErrEmptyInstanceName indicates an instance without a name.
	ErrEmptyInstanceName = errors.New("session: empty instance name")
)

// Instance names one graph file of the session.
type Instance struct {
	// Name is the label and, without Path, the file name under GraphsDir.
	Name string

	// Path overrides GraphsDir/Name when set. A relative Path is taken
	// from GraphsDir.
	Path string

	// Skip keeps the instance in the config without running it.
	Skip bool
}

// Resolve returns the file path of the instance: an absolute Path as is,
// otherwise Path or Name joined to graphsDir.
func (i Instance) Resolve(graphsDir string) string {
	switch {
	case i.Path == "":
		return filepath.Join(graphsDir, i.Name)
	case filepath.IsAbs(i.Path):
		return i.Path
	default:
		return filepath.Join(graphsDir, i.Path)
	}
}

// Config holds the settings of one session.
type Config struct {
	GraphsDir  string
	LogFile    string
	Algorithms []coloring.Algorithm
	Instances  []Instance
	Verify     bool
}

// DefaultConfig returns the stock session: the two DSJC instances under
// DIMACS_Graphs_Instances, all three algorithms, results appended to results.log.
func DefaultConfig() Config {
	return Config{
		GraphsDir:  DefaultGraphsDir,
		LogFile:    DefaultLogFile,
		Algorithms: coloring.Algorithms(),
		Instances: []Instance{
			{Name: "dsjc250.5.col"},
			{Name: "dsjc500.1.col"},
		},
	}
}

// Validate checks that the config can drive a session.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return ErrNoAlgorithms
	}
	seen := make(map[string]struct{}, len(c.Instances))
	for i, inst := range c.Instances {
		if inst.Name == "" {
			return fmt.Errorf("%w: instance #%d", ErrEmptyInstanceName, i)
		}
		if _, dup := seen[inst.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateInstance, inst.Name)
		}
		seen[inst.Name] = struct{}{}
	}

	return nil
}

// fileRoot mirrors the top level of a session file. Pointer fields tell
// "absent" from zero values so absent settings keep their defaults.
type fileRoot struct {
	GraphsDir  *string          `hcl:"graphs_dir,optional"`
	LogFile    *string          `hcl:"log_file,optional"`
	Algorithms *[]string        `hcl:"algorithms,optional"`
	Verify     *bool            `hcl:"verify,optional"`
	Instances  []*instanceBlock `hcl:"instance,block"`
}

type instanceBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path,optional"`
	Skip bool   `hcl:"skip,optional"`
}

// LoadConfig reads and decodes the HCL session file at path.
func LoadConfig(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("session: read config %s: %w", path, err)
	}

	return ParseConfig(src, path)
}

// ParseConfig decodes HCL source. filename labels diagnostics and sets
// config_dir. Settings absent from the source keep DefaultConfig values;
// any instance block replaces the default instance list.
func ParseConfig(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(filename), &root)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := DefaultConfig()
	if root.GraphsDir != nil {
		cfg.GraphsDir = *root.GraphsDir
	}
	if root.LogFile != nil {
		cfg.LogFile = *root.LogFile
	}
	if root.Verify != nil {
		cfg.Verify = *root.Verify
	}
	if root.Algorithms != nil {
		cfg.Algorithms = nil
		for _, name := range *root.Algorithms {
			alg, err := coloring.ParseAlgorithm(name)
			if err != nil {
				return Config{}, fmt.Errorf("session: %s: %w", filename, err)
			}
			cfg.Algorithms = append(cfg.Algorithms, alg)
		}
	}
	if len(root.Instances) > 0 {
		cfg.Instances = make([]Instance, 0, len(root.Instances))
		for _, b := range root.Instances {
			cfg.Instances = append(cfg.Instances, Instance{Name: b.Name, Path: b.Path, Skip: b.Skip})
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("session: %s: %w", filename, err)
	}

	return cfg, nil
}

// evalContext exposes cwd, home and config_dir to session files.
func evalContext(filename string) *hcl.EvalContext {
	cwd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	configDir := filepath.Dir(filename)
	if abs, err := filepath.Abs(configDir); err == nil {
		configDir = abs
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cwd":        cty.StringVal(cwd),
			"home":       cty.StringVal(home),
			"config_dir": cty.StringVal(configDir),
		},
	}
}
