// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/altshiftab/draft04/pkg/format"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "draft04").
		WithSynopsis("draft04 command [opts]").
		WithDescription("draft04 validates documents against draft-04 JSON schemas.").
		WithRun(func(cc *cli.Context, args []string) error {
			return draft04Main(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			LintCommand(cfg),
			FormatsCommand(cfg),
		)
}

func draft04Main(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	return err
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "check").
		WithAliases("c").
		WithSynopsis("check [opts] <schema> [documents]").
		WithDescription("check documents against a schema, reading stdin when no documents are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "lint").
		WithSynopsis("lint [opts] <schema> [schemas]").
		WithDescription("check schemas against the draft-04 meta-schema and compile them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lint(cfg, cc, args)
		})
}

func FormatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "formats").
		WithSynopsis("formats").
		WithDescription("list the format names that check -format asserts").
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := cfg.Command.Parse(cc, args); err != nil {
				return err
			}
			for _, name := range format.Formats() {
				fmt.Fprintln(cc.Out, name)
			}
			return nil
		})
}
