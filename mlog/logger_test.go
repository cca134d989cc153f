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

package mlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(LogConfig{Level: "verbose"})
	assert.Error(t, err)

	f := filepath.Join(t.TempDir(), "log.json")
	lg, err := NewLogger(LogConfig{Level: "warn", File: f, Production: true})
	require.NoError(t, err)
	lg.Info("dropped")
	lg.Warn("kept", zap.Int("n", 1))
	_ = lg.Sync()

	b, err := os.ReadFile(f)
	require.NoError(t, err)
	m := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "kept", m["msg"])
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, float64(1), m["n"])
}

func TestInit(t *testing.T) {
	old, oldS, oldLvl := l, s, lvl.Level()
	defer func() {
		l, s = old, oldS
		SetLevel(oldLvl)
	}()

	assert.Error(t, Init(LogConfig{Level: "verbose"}))
	assert.Same(t, old, L())

	f := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, Init(LogConfig{Level: "debug", File: f}))
	assert.NotSame(t, old, L())
	S().Debugw("hello", "k", "v")
	_ = L().Sync()

	b, err := os.ReadFile(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")
	assert.Contains(t, string(b), `{"k": "v"}`)

	SetLevel(zap.WarnLevel)
	L().Info("info after set level")
	L().Warn("warn after set level")
	_ = L().Sync()

	b, err = os.ReadFile(f)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "info after set level")
	assert.Contains(t, string(b), "warn after set level")
}
