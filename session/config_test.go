// SPDX-License-Identifier: MIT

package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	assert.Equal(t, "DIMACS_Graphs_Instances", cfg.GraphsDir)
	assert.Equal(t, "results.log", cfg.LogFile)
	assert.Equal(t, []coloring.Algorithm{coloring.AlgIDO, coloring.AlgDSATUR, coloring.AlgRLF}, cfg.Algorithms)
	require.Len(t, cfg.Instances, 2)
	assert.Equal(t, filepath.Join("DIMACS_Graphs_Instances", "dsjc250.5.col"), cfg.Instances[0].Resolve(cfg.GraphsDir))
	assert.Equal(t, "dsjc500.1.col", cfg.Instances[1].Name)
	assert.False(t, cfg.Verify)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_Full(t *testing.T) {
	src := `
graphs_dir = "graphs"
log_file   = "${cwd}/session.log"
algorithms = ["rlf", "IDO"]
verify     = true

instance "dsjc250.5.col" {}

instance "flat" {
  path = "${home}/flat300_28_0.col"
  skip = true
}
`
	cfg, err := session.ParseConfig([]byte(src), "session.hcl")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	home, _ := os.UserHomeDir()

	assert.Equal(t, "graphs", cfg.GraphsDir)
	assert.Equal(t, cwd+"/session.log", cfg.LogFile)
	assert.Equal(t, []coloring.Algorithm{coloring.AlgRLF, coloring.AlgIDO}, cfg.Algorithms)
	assert.True(t, cfg.Verify)
	require.Len(t, cfg.Instances, 2)
	assert.Equal(t, session.Instance{Name: "dsjc250.5.col"}, cfg.Instances[0])
	assert.Equal(t, filepath.Join("graphs", "dsjc250.5.col"), cfg.Instances[0].Resolve(cfg.GraphsDir))
	assert.Equal(t, session.Instance{Name: "flat", Path: home + "/flat300_28_0.col", Skip: true}, cfg.Instances[1])
	assert.Equal(t, home+"/flat300_28_0.col", cfg.Instances[1].Resolve(cfg.GraphsDir))
}

func TestParseConfig_AbsentSettingsKeepDefaults(t *testing.T) {
	cfg, err := session.ParseConfig([]byte("verify = true\n"), "partial.hcl")
	require.NoError(t, err)

	want := session.DefaultConfig()
	want.Verify = true
	assert.Equal(t, want, cfg)

	cfg, err = session.ParseConfig(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, session.DefaultConfig(), cfg)
}

func TestParseConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown algorithm", `algorithms = ["TABU"]`, coloring.ErrUnknownAlgorithm},
		{"no algorithms", `algorithms = []`, session.ErrNoAlgorithms},
		{"duplicate instance", "instance \"a\" {}\ninstance \"a\" {}\n", session.ErrDuplicateInstance},
		{"empty instance name", `instance "" {}`, session.ErrEmptyInstanceName},
		{"syntax", `graphs_dir = `, nil},
		{"unknown attribute", `workers = 4`, nil},
		{"wrong type", `verify = "maybe"`, nil},
		{"unknown variable", `log_file = "${nowhere}/x.log"`, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.ParseConfig([]byte(tc.src), "bad.hcl")
			require.Error(t, err)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestInstance_Resolve(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "g.col")
	cases := []struct {
		name string
		inst session.Instance
		want string
	}{
		{"name only", session.Instance{Name: "dsjc250.5.col"}, filepath.Join("graphs", "dsjc250.5.col")},
		{"relative path", session.Instance{Name: "queen", Path: "queens/queen5_5.col"}, filepath.Join("graphs", "queens", "queen5_5.col")},
		{"absolute path", session.Instance{Name: "abs", Path: abs}, abs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.inst.Resolve("graphs"))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.hcl")
	src := "instance \"local\" {\n  path = \"${config_dir}/local.col\"\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := session.LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Instances, 1)

	absDir, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, absDir+"/local.col", cfg.Instances[0].Path)

	_, err = session.LoadConfig(filepath.Join(dir, "missing.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
