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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/apint"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// maxLineSize bounds a single batch line, and with it the operand size.
const maxLineSize = 16 << 20

func newBatchCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Evaluate one expression per line of stdin",
		Long: `batch reads lines of the form "X Y [OP]" from stdin, where OP defaults to +,
and prints one result per line. A line that cannot be evaluated prints an
error line in its place; the command fails once all input is read if any line
failed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			return withWidth(v.GetInt("width"),
				func() error { return batch[uint8, apint.Narrow](in, out) },
				func() error { return batch[uint64, apint.Wide](in, out) },
			)
		},
	}
}

func batch[W apint.Word, R apint.Radix[W]](r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineNo, lines, failed int
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		lines++
		z, err := evalLine[W, R](fields)
		if err != nil {
			failed++
			glog.Warningf("line %d: %v", lineNo, err)
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, z)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d lines failed", failed, lines)
	}
	return nil
}

func evalLine[W apint.Word, R apint.Radix[W]](fields []string) (apint.Int[W, R], error) {
	if len(fields) != 2 && len(fields) != 3 {
		return apint.Int[W, R]{}, errors.Errorf("expected \"X Y [OP]\", got %d fields", len(fields))
	}
	tok := "+"
	if len(fields) == 3 {
		tok = fields[2]
	}
	op, err := apint.ParseOp(tok)
	if err != nil {
		return apint.Int[W, R]{}, err
	}
	var ed apint.ErrInt[W, R]
	x := ed.Parse(fields[0])
	y := ed.Parse(fields[1])
	z := ed.Apply(op, x, y)
	return z, ed.Err
}
