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

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dsl"
)

func newConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a Wiktionary JSON Lines file to a DSL dictionary.",
		ArgsUsage: "[INPUT [OUTPUT]]",
		Description: "Reads one JSON record per line from INPUT and writes a DSL dictionary to OUTPUT.\n" +
			"Files ending in .gz are read compressed. Output ending in .dz is written with dictzip.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "dictionary display `NAME`",
			},
			&cli.StringFlag{
				Name:  "index-language",
				Usage: "headword `LANGUAGE`",
			},
			&cli.StringFlag{
				Name:  "contents-language",
				Usage: "card contents `LANGUAGE`",
			},
			&cli.StringFlag{
				Name:  "on-malformed",
				Usage: "what to do with malformed records: `POLICY` is abort or skip",
			},
			&cli.BoolFlag{
				Name:               "fold-headwords",
				Usage:              "fold whitespace in headwords",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "strip-html",
				Usage:              "convert HTML in glosses and examples to text",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "quiet",
				Usage:              "do not print a summary",
				Aliases:            []string{"q"},
				DisableDefaultText: true,
			},
			newHelpFlag(),
		},
		HideHelp:     true,
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowSubcommandHelp(c))
				return nil
			}

			if c.Args().Len() > 2 {
				return fmt.Errorf("%w: too many arguments", ErrFlagParse)
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDslutil, err)
			}

			if c.Args().Len() > 0 {
				cfg.Convert.Input = c.Args().Get(0)
			}
			if c.Args().Len() > 1 {
				cfg.Convert.Output = c.Args().Get(1)
			}
			if c.IsSet("name") {
				cfg.Dictionary.Name = c.String("name")
			}
			if c.IsSet("index-language") {
				cfg.Dictionary.IndexLanguage = c.String("index-language")
			}
			if c.IsSet("contents-language") {
				cfg.Dictionary.ContentsLanguage = c.String("contents-language")
			}
			if c.IsSet("on-malformed") {
				cfg.Convert.OnMalformed = c.String("on-malformed")
			}
			if c.IsSet("fold-headwords") {
				cfg.Convert.FoldHeadwords = c.Bool("fold-headwords")
			}
			if c.IsSet("strip-html") {
				cfg.Convert.StripHTML = c.Bool("strip-html")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}

			// NOTE: Validate has already checked the policy.
			policy, err := dsl.ParseMalformedPolicy(cfg.Convert.OnMalformed)
			check(err)

			logger := newLogger(c)
			logger.Debug("converting",
				"input", cfg.Convert.Input,
				"output", cfg.Convert.Output,
				"policy", policy.String(),
			)

			stats, err := dsl.ConvertFile(cfg.Convert.Input, cfg.Convert.Output, &dsl.ConvertOptions{
				Header: cfg.Header(),
				Render: &dsl.RenderOptions{
					FoldHeadwords: cfg.Convert.FoldHeadwords,
					StripHTML:     cfg.Convert.StripHTML,
				},
				OnMalformed: policy,
				Logger:      logger,
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDslutil, err)
			}

			if !c.Bool("quiet") {
				tbl := table.New("Input", "Output", "Lines", "Written", "Skipped").WithWriter(c.App.ErrWriter)
				tbl.AddRow(cfg.Convert.Input, cfg.Convert.Output, stats.Lines, stats.Written, stats.Skipped)
				tbl.Print()
			}

			return nil
		},
	}
}
