// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/db47h/numeric"
	numctx "github.com/db47h/numeric/context"
	"github.com/db47h/numeric/keyenc"
	nmath "github.com/db47h/numeric/math"
	"github.com/spf13/cobra"
)

// app carries the state shared by the numcalc commands.
type app struct {
	settings
	out    io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{settings: defaultSettings(), out: out}

	root := &cobra.Command{
		Use:           "numcalc",
		Short:         "exact arithmetic on base 2**64 numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.Config != "" {
				s, err := loadConfig(a.Config, a.settings, cmd.Flags().Changed)
				if err != nil {
					return err
				}
				a.settings = s
			}
			level := slog.LevelWarn
			if a.Verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.IntVar(&a.Prec, "prec", a.Prec, "fractional words kept by parsing and division")
	pf.Var(&a.Format, "format", "output format: decimal, debug or float")
	pf.StringVar(&a.Config, "config", "", "YAML configuration file")
	pf.BoolVarP(&a.Verbose, "verbose", "v", false, "log debug information to stderr")

	root.AddCommand(
		a.showCmd(),
		a.evalCmd(),
		a.powCmd(),
		a.factCmd(),
		a.keyCmd(),
	)
	return root
}

// context returns a new arithmetic context and a context.Context tagged with
// the command name for logging.
func (a *app) context(cmd *cobra.Command) (context.Context, *numctx.Context) {
	ctx := logtags.AddTag(cmd.Context(), "cmd", cmd.Name())
	return ctx, numctx.New(a.Prec)
}

func (a *app) debug(ctx context.Context, msg string, args ...any) {
	if tags := logtags.FromContext(ctx); tags != nil {
		args = append(args, slog.String("tags", tags.String()))
	}
	a.logger.DebugContext(ctx, msg, args...)
}

func (a *app) print(x numeric.Number) {
	fmt.Fprintln(a.out, a.Format.render(x))
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show LITERAL...",
		Short: "print parsed literals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, c := a.context(cmd)
			for _, s := range args {
				x := c.Parse(s)
				if err := c.Err(); err != nil {
					return err
				}
				a.debug(ctx, "parsed", "literal", s, "form", x.Form(), "words", x.Len(), "exp", x.Exp())
				a.print(x)
			}
			return nil
		},
	}
}

func parseWord(s string) (numeric.Word, error) {
	d, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "divisor %q is not a machine word", s)
	}
	return numeric.Word(d), nil
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval A OP B",
		Short: "evaluate a binary operation, OP is one of + - * / %",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, c := a.context(cmd)
			x := c.Parse(args[0])
			var z numeric.Number
			switch op := args[1]; op {
			case "+":
				z = c.Add(x, c.Parse(args[2]))
			case "-":
				z = c.Sub(x, c.Parse(args[2]))
			case "*", "x":
				z = c.Mul(x, c.Parse(args[2]))
			case "/", "%":
				d, err := parseWord(args[2])
				if err != nil {
					return err
				}
				if op == "/" {
					z = c.Quo(x, d)
				} else {
					z = c.Rem(x, d)
				}
			default:
				return errors.Newf("unknown operator %q", op)
			}
			if err := c.Err(); err != nil {
				return err
			}
			a.debug(ctx, "evaluated", "op", args[1], "words", z.Len(), "exp", z.Exp())
			a.print(z)
			return nil
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow X N",
		Short: "compute X**N exactly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, c := a.context(cmd)
			x := c.Parse(args[0])
			if err := c.Err(); err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid exponent %q", args[1])
			}
			z := nmath.Pow(x, n)
			a.debug(ctx, "power", "n", n, "words", z.Len())
			a.print(z)
			return nil
		},
	}
}

func (a *app) factCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fact N",
		Short: "compute N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := a.context(cmd)
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid argument %q", args[0])
			}
			z := nmath.Factorial(n)
			a.debug(ctx, "factorial", "n", n, "words", z.Len())
			a.print(z)
			return nil
		},
	}
}

func (a *app) keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key LITERAL...",
		Short: "print the order-preserving key encoding of literals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, c := a.context(cmd)
			for _, s := range args {
				x := c.Parse(s)
				if err := c.Err(); err != nil {
					return err
				}
				key := keyenc.EncodeAscending(nil, x)
				a.debug(ctx, "encoded", "literal", s, "bytes", len(key))
				fmt.Fprintf(a.out, "%x\n", key)
			}
			return nil
		},
	}
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
