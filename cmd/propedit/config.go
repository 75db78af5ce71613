// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"log/slog"

	"cogentcore.org/editkit/base/errors"
	"cogentcore.org/editkit/base/iox/tomlx"
	"cogentcore.org/editkit/base/logx"
	"cogentcore.org/editkit/base/reflectx"
)

// Config contains the configuration information used by propedit.
// It is set from `default:` tags, then from the config file if it
// exists, and finally from the command line options.
type Config struct {

	// Type restricts the edited objects to those of this type name.
	Type string

	// Output is the file the store is saved to, if it differs from
	// the file it is loaded from. Its extension selects the format,
	// so it can be used to convert between formats.
	Output string

	// DryRun prints the changes that would be made instead of saving them.
	DryRun bool

	// HistoryMax is the maximum number of changes recorded per run.
	HistoryMax int `default:"1000"`

	// Log contains the logging options.
	Log LogConfig
}

// LogConfig contains the logging options.
type LogConfig struct {

	// Verbose logs info messages.
	Verbose bool

	// VeryVerbose logs debug messages.
	VeryVerbose bool

	// Quiet only logs errors.
	Quiet bool
}

// Level returns the log level for the options.
func (lc *LogConfig) Level() slog.Level {
	return logx.LevelFromFlags(lc.VeryVerbose, lc.Verbose, lc.Quiet)
}

// NewConfig returns a new config with its default values set.
func NewConfig() (*Config, error) {
	c := &Config{}
	if err := reflectx.SetFromDefaultTags(c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig returns a new config with its default values set,
// overridden by the given TOML file if it exists.
func LoadConfig(filename string) (*Config, error) {
	c, err := NewConfig()
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return c, nil
	}
	err = tomlx.Open(c, filename)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	return c, err
}
