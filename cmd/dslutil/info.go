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
	"errors"
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dsl"
)

type dictInfo struct {
	header    dsl.Header
	cards     int
	headwords int
}

func readInfo(path string) (*dictInfo, error) {
	f, err := dsl.Open(path)
	if err != nil {
		//nolint:wrapcheck // error is already wrapped by Open.
		return nil, err
	}
	defer f.Close()

	r, err := dsl.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	info := &dictInfo{header: r.Header()}
	for r.Scan() {
		info.cards++
		info.headwords += len(r.Card().Headwords)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return info, nil
}

func newInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print information about DSL dictionaries.",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			newHelpFlag(),
		},
		HideHelp:     true,
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowSubcommandHelp(c))
				return nil
			}

			if c.Args().Len() == 0 {
				return fmt.Errorf("%w: missing FILE argument", ErrFlagParse)
			}

			tbl := table.New("File", "Name", "Index", "Contents", "Cards", "Headwords").WithWriter(c.App.Writer)
			var errs []error
			for _, path := range c.Args().Slice() {
				info, err := readInfo(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				tbl.AddRow(
					path,
					info.header.Name,
					info.header.IndexLanguage,
					info.header.ContentsLanguage,
					info.cards,
					info.headwords,
				)
			}
			tbl.Print()

			if err := errors.Join(errs...); err != nil {
				return fmt.Errorf("%w: %w", ErrDslutil, err)
			}
			return nil
		},
	}
}
