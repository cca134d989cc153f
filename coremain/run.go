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
	"errors"
	"fmt"
	"github.com/IrineSistiana/ringlist/mlog"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"os"
)

var rootCmd = &cobra.Command{
	Use: "ringlist",
}

func init() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a list, print it and check its iteration order.",
		Args:  cobra.NoArgs,
		Run:   StartDemo,
	}
	rootCmd.AddCommand(demoCmd)
	fs := demoCmd.PersistentFlags()
	fs.StringVarP(&df.c, "config", "c", "", "config file")
	fs.StringVarP(&df.dir, "dir", "d", "", "working dir")

	rootCmd.AddCommand(newGenCmd())
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

type demoFlags struct {
	c   string
	dir string
}

var df = demoFlags{}

func StartDemo(cmd *cobra.Command, args []string) {
	if len(df.dir) > 0 {
		err := os.Chdir(df.dir)
		if err != nil {
			mlog.L().Fatal("failed to change the current working directory", zap.Error(err))
		}
		mlog.L().Info("working directory changed", zap.String("path", df.dir))
	}

	cfg, err := loadConfig(df.c)
	if err != nil {
		mlog.L().Fatal("failed to load config", zap.Error(err))
	}

	if err := mlog.Init(cfg.Log); err != nil {
		mlog.L().Fatal("failed to init logger", zap.Error(err))
	}

	if err := RunDemo(cfg, mlog.L(), cmd.OutOrStdout()); err != nil {
		mlog.L().Fatal("demo failed", zap.Error(err))
	}
}

// loadConfig reads the config file at path. If path is empty, it looks
// for "config" in the working dir and falls back to the defaults.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, defaultConfig())
	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if len(path) > 0 || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		mlog.L().Info("no config file found, using default config")
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg, decoderOpt); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.production", cfg.Log.Production)
	v.SetDefault("demo.mode", cfg.Demo.Mode)
	v.SetDefault("demo.values", cfg.Demo.Values)
	v.SetDefault("demo.delete", cfg.Demo.Delete)
	v.SetDefault("demo.print_limit", cfg.Demo.PrintLimit)
	v.SetDefault("demo.max_nodes", cfg.Demo.MaxNodes)
	v.SetDefault("demo.metrics", cfg.Demo.Metrics)
}

func decoderOpt(cfg *mapstructure.DecoderConfig) {
	cfg.ErrorUnused = true
	cfg.TagName = "yaml"
	cfg.WeaklyTypedInput = true
}
