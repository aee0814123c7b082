// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads dslutil configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-dsl"
)

// ErrInvalid indicates that a configuration value is invalid.
var ErrInvalid = errors.New("invalid config")

// Config is the dslutil configuration.
type Config struct {
	Dictionary Dictionary `yaml:"dictionary"`
	Convert    Convert    `yaml:"convert"`
}

// Dictionary holds the DSL header values.
type Dictionary struct {
	Name             string `yaml:"name" env:"DSLUTIL_NAME" env-default:"Wiktionary (Hbs-Eng)"`
	IndexLanguage    string `yaml:"index_language" env:"DSLUTIL_INDEX_LANGUAGE" env-default:"SerbianCyrillic"`
	ContentsLanguage string `yaml:"contents_language" env:"DSLUTIL_CONTENTS_LANGUAGE" env-default:"English"`
}

// Convert holds the conversion settings.
type Convert struct {
	Input         string `yaml:"input" env:"DSLUTIL_INPUT" env-default:"./words.json"`
	Output        string `yaml:"output" env:"DSLUTIL_OUTPUT" env-default:"./hbs.dsl"`
	OnMalformed   string `yaml:"on_malformed" env:"DSLUTIL_ON_MALFORMED" env-default:"abort"`
	FoldHeadwords bool   `yaml:"fold_headwords" env:"DSLUTIL_FOLD_HEADWORDS" env-default:"false"`
	StripHTML     bool   `yaml:"strip_html" env:"DSLUTIL_STRIP_HTML" env-default:"false"`
}

// Header returns the DSL header for the configured dictionary.
func (c *Config) Header() dsl.Header {
	return dsl.Header{
		Name:             c.Dictionary.Name,
		IndexLanguage:    c.Dictionary.IndexLanguage,
		ContentsLanguage: c.Dictionary.ContentsLanguage,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Dictionary.Name == "" {
		return fmt.Errorf("%w: dictionary name is empty", ErrInvalid)
	}
	if c.Dictionary.IndexLanguage == "" {
		return fmt.Errorf("%w: index language is empty", ErrInvalid)
	}
	if c.Dictionary.ContentsLanguage == "" {
		return fmt.Errorf("%w: contents language is empty", ErrInvalid)
	}
	if _, err := dsl.ParseMalformedPolicy(c.Convert.OnMalformed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Load reads configuration from the YAML file at path and environment
// variables. Priority: ENV > YAML > defaults. If path is empty or the file
// does not exist and required is false, configuration is read from the
// environment and defaults only.
func Load(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required:
		if path == "" {
			statErr = os.ErrNotExist
		}
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
