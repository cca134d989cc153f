/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of ringlist.
 *
 * ringlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * ringlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package coremain

import (
	"bytes"
	"github.com/IrineSistiana/ringlist/pkg/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func demoConfig(dc DemoConfig) *Config {
	cfg := defaultConfig()
	cfg.Demo = dc
	return cfg
}

func TestRunDemo(t *testing.T) {
	tests := []struct {
		name    string
		dc      DemoConfig
		wantOut string
	}{
		{"default", defaultConfig().Demo, "[43 <-> 4 <-> 1]\n"},
		{"front", DemoConfig{Mode: modeFront, Values: []int{1, 4, 43, 9, 3, 56, 4}}, "[4 <-> 56 <-> 3 <-> 9 <-> 43 <-> 4 <-> 1]\n"},
		{"back", DemoConfig{Mode: modeBack, Values: []int{1, 4, 43, 9, 3, 56, 4}}, "[1 <-> 4 <-> 43 <-> 9 <-> 3 <-> 56 <-> 4]\n"},
		{"delete", DemoConfig{Mode: modeFront, Values: []int{1, 4, 43, 4, 5, 7, 9, 10, 11}, Delete: []int{43}}, "[11 <-> 10 <-> 9 <-> 7 <-> 5 <-> 4 <-> 4 <-> 1]\n"},
		{"delete duplicated", DemoConfig{Mode: modeBack, Values: []int{4, 1, 4}, Delete: []int{4}}, "[1 <-> 4]\n"},
		{"delete all", DemoConfig{Mode: modeBack, Values: []int{1, 2}, Delete: []int{2, 1}}, "[]\n"},
		{"empty", DemoConfig{Mode: modeBack}, "[]\n"},
		{"print limit", DemoConfig{Mode: modeBack, Values: []int{1, 2, 3}, PrintLimit: 1}, "[1 ...]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			require.NoError(t, RunDemo(demoConfig(tt.dc), zap.NewNop(), out))
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestRunDemo_NotFound(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	out := new(bytes.Buffer)
	dc := DemoConfig{Mode: modeFront, Values: []int{1, 2}, Delete: []int{1043, 1}}
	require.NoError(t, RunDemo(demoConfig(dc), zap.New(core), out))
	assert.Equal(t, "[2]\n", out.String())

	warns := logs.FilterMessage("value not deleted").All()
	if assert.Len(t, warns, 1) {
		assert.Equal(t, int64(1043), warns[0].ContextMap()["value"])
	}
}

func TestRunDemo_MaxNodes(t *testing.T) {
	dc := DemoConfig{Mode: modeBack, Values: []int{1, 2, 3}, MaxNodes: 2}
	err := RunDemo(demoConfig(dc), zap.NewNop(), new(bytes.Buffer))
	assert.ErrorIs(t, err, ring.ErrAllocFailed)
}

func TestRunDemo_Metrics(t *testing.T) {
	out := new(bytes.Buffer)
	dc := DemoConfig{Mode: modeBack, Values: []int{1, 2, 3}, Delete: []int{2}, Metrics: true}
	require.NoError(t, RunDemo(demoConfig(dc), zap.NewNop(), out))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "[1 <-> 3]\n"))
	assert.Contains(t, s, "ringlist_ring_nodes_allocated_total 3\n")
	assert.Contains(t, s, "ringlist_ring_nodes_released_total 1\n")
	assert.Contains(t, s, "ringlist_ring_nodes_live 2\n")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, "config.yaml", `
log:
  level: debug
demo:
  mode: back
  values: [3, 2, 1]
  delete: [2]
  metrics: true
`)
	cfg, err := loadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, modeBack, cfg.Demo.Mode)
	assert.Equal(t, []int{3, 2, 1}, cfg.Demo.Values)
	assert.Equal(t, []int{2}, cfg.Demo.Delete)
	assert.True(t, cfg.Demo.Metrics)
	assert.Equal(t, 3, cfg.Demo.PrintLimit, "unset keys should keep their defaults")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "demo:\n  unknown: 1\n"},
		{"bad mode", "demo:\n  mode: middle\n"},
		{"bad limits", "demo:\n  print_limit: -1\n  max_nodes: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, "config.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenCfg(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, genCfg(p))
	assert.Error(t, genCfg(p), "existing file should not be overwritten")

	cfg, err := loadConfig(p)
	require.NoError(t, err)
	want := defaultConfig()
	assert.Equal(t, want.Log, cfg.Log)
	assert.Equal(t, want.Demo.Mode, cfg.Demo.Mode)
	assert.Equal(t, want.Demo.Values, cfg.Demo.Values)
	assert.Empty(t, cfg.Demo.Delete)
	assert.Equal(t, want.Demo.PrintLimit, cfg.Demo.PrintLimit)
}

func TestConfig_validate(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.validate())

	cfg.Demo.Mode = ""
	cfg.Demo.PrintLimit = -1
	err := cfg.validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "#0")
		assert.Contains(t, err.Error(), "#1")
	}
}
