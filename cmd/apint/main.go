// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command apint adds, subtracts or multiplies two arbitrary-precision
// integers given on the command line:
//
//	apint 123456789123456789 2 '*'
//	apint -- -100 999 -
//
// Operands that start with '-' must follow "--" so they are not read as
// flags. "apint batch" reads one expression per line from stdin instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/apint"
	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func main() {
	// glog writes to files by default; a calculator should log to stderr.
	_ = flag.Set("logtostderr", "true")
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "apint [flags] X Y OP",
		Short: "Arbitrary-precision integer calculator",
		Long: `apint evaluates X OP Y where OP is +, - or *, prints the result, and then
reports how many chunks each operand occupies. Any other operator, including /,
is reported as unsupported.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sep := separator(out, v.GetString("color"))
			return withWidth(v.GetInt("width"),
				func() error { return calc[uint8, apint.Narrow](out, sep, args) },
				func() error { return calc[uint64, apint.Wide](out, sep, args) },
			)
		},
	}

	// Global flags
	fs := cmd.PersistentFlags()
	fs.Int("width", 18, "decimal digits per chunk (1|18)")
	fs.String("color", "auto", "colorize output (auto|on|off)")
	fs.AddGoFlagSet(flag.CommandLine)

	// APINT_WIDTH and APINT_COLOR apply when the flags are not given.
	v.SetEnvPrefix("apint")
	v.AutomaticEnv()
	for _, name := range []string{"width", "color"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(newBatchCmd(v))
	return cmd
}

// withWidth runs narrow or wide depending on the configured chunk width.
func withWidth(width int, narrow, wide func() error) error {
	switch width {
	case 1:
		return narrow()
	case 18:
		return wide()
	default:
		return errors.Errorf("unsupported width %d: want 1 or 18", width)
	}
}

// separator returns the color used for the line between the result and the
// operand diagnostics.
func separator(w io.Writer, mode string) *color.Color {
	c := color.New(color.FgGreen)
	useColor := mode == "on"
	if mode == "auto" {
		if f, ok := w.(*os.File); ok {
			useColor = term.IsTerminal(int(f.Fd()))
		}
	}
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func calc[W apint.Word, R apint.Radix[W]](w io.Writer, sep *color.Color, args []string) error {
	x, err := apint.ParseAs[W, R](args[0])
	if err != nil {
		return errors.Wrap(err, "X")
	}
	y, err := apint.ParseAs[W, R](args[1])
	if err != nil {
		return errors.Wrap(err, "Y")
	}

	var z apint.Int[W, R]
	op, err := apint.ParseOp(args[2])
	if err == nil {
		z, err = apint.Apply(op, x, y)
	}
	switch {
	case errors.Is(err, apint.ErrUnsupportedOperation):
		fmt.Fprintf(w, "unsupported operation: %s\n", args[2])
	case err != nil:
		return err
	default:
		fmt.Fprintln(w, z)
	}

	sep.Fprintln(w, strings.Repeat("-", 26))
	fmt.Fprintf(w, "x len: %d\n", x.Len())
	fmt.Fprintf(w, "y len: %d\n", y.Len())
	return nil
}
