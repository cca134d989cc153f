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
	"fmt"
	"github.com/IrineSistiana/ringlist/mlog"
	"github.com/IrineSistiana/ringlist/pkg/utils"
)

const (
	modeFront = "front"
	modeBack  = "back"
)

type Config struct {
	Log  mlog.LogConfig `yaml:"log"`
	Demo DemoConfig     `yaml:"demo"`
}

type DemoConfig struct {
	// Mode: how values are inserted, can be:
	// "front" -> InsertFront, forward order is the reverse of Values.
	// "back" -> InsertBack, forward order is Values.
	Mode string `yaml:"mode"`

	Values []int `yaml:"values"`

	// Delete, values deleted after all insertions. Values that are
	// not in the list are logged and skipped.
	Delete []int `yaml:"delete"`

	PrintLimit int  `yaml:"print_limit"` // 0 means print all.
	MaxNodes   int  `yaml:"max_nodes"`   // 0 means no limit.
	Metrics    bool `yaml:"metrics"`     // dump node metrics after the run.
}

func defaultConfig() *Config {
	return &Config{
		Log: mlog.LogConfig{
			Level: "info",
		},
		Demo: DemoConfig{
			Mode:       modeFront,
			Values:     []int{1, 4, 43},
			Delete:     []int{},
			PrintLimit: 3,
		},
	}
}

func (c *Config) validate() error {
	var es utils.Errors
	switch c.Demo.Mode {
	case modeFront, modeBack:
	default:
		es.Append(fmt.Errorf("invalid demo mode %q", c.Demo.Mode))
	}
	if c.Demo.PrintLimit < 0 {
		es.Append(fmt.Errorf("invalid print limit %d", c.Demo.PrintLimit))
	}
	if c.Demo.MaxNodes < 0 {
		es.Append(fmt.Errorf("invalid max nodes %d", c.Demo.MaxNodes))
	}
	return es.Build()
}
