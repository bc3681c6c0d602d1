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

package apint

import (
	"fmt"
	"math/big"
	"testing"
)

// Radices that violate the chunk arithmetic bounds.
type threeDigitBytes struct{}

func (threeDigitBytes) Width() int { return 3 }
func (threeDigitBytes) mulAdd(x, y, c uint8) (hi, lo uint8) { return 0, 0 }

type nineteenDigitWords struct{}

func (nineteenDigitWords) Width() int { return 19 }
func (nineteenDigitWords) mulAdd(x, y, c uint64) (hi, lo uint64) { return 0, 0 }

type truncatingDigits struct{}

func (truncatingDigits) Width() int { return 1 }
func (truncatingDigits) mulAdd(x, y, c uint8) (hi, lo uint8) {
	t := x*y + c
	return 0, t % 10
}

func TestMustValidRadix(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic")
				} else {
					t.Log(r)
				}
			}()
			fn()
		})
	}
	expectPanic("chunk too small", mustValidRadix[uint8, threeDigitBytes])
	expectPanic("sum overflows", mustValidRadix[uint64, nineteenDigitWords])
	expectPanic("bad mulAdd", mustValidRadix[uint8, truncatingDigits])

	// The shipped radices pass.
	mustValidRadix[uint8, Narrow]()
	mustValidRadix[uint64, Wide]()
}

func TestBase(t *testing.T) {
	if b := base[uint8, Narrow](); b != 10 {
		t.Fatalf("narrow: got %d", b)
	}
	if b := base[uint64, Wide](); b != wideBase {
		t.Fatalf("wide: got %d", b)
	}
}

func TestWideMulAdd(t *testing.T) {
	var w Wide
	tests := [][3]uint64{
		{0, 0, 0},
		{1, 1, 0},
		{wideBase - 1, wideBase - 1, 0},
		{wideBase - 1, wideBase - 1, wideBase - 1},
		{123456789123456789, 987654321987654321, 42},
		{1 << 40, 1 << 40, 1},
	}
	bb := new(big.Int).SetUint64(wideBase)
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc), func(t *testing.T) {
			hi, lo := w.mulAdd(tc[0], tc[1], tc[2])
			e := new(big.Int).SetUint64(tc[0])
			e.Mul(e, new(big.Int).SetUint64(tc[1]))
			e.Add(e, new(big.Int).SetUint64(tc[2]))
			ehi, elo := new(big.Int).QuoRem(e, bb, new(big.Int))
			if hi != ehi.Uint64() || lo != elo.Uint64() {
				t.Fatalf("got (%d, %d), expected (%s, %s)", hi, lo, ehi, elo)
			}
		})
	}
}

func TestNarrowMulAdd(t *testing.T) {
	var n Narrow
	for x := uint8(0); x < 10; x++ {
		for y := uint8(0); y < 10; y++ {
			for c := uint8(0); c < 10; c++ {
				hi, lo := n.mulAdd(x, y, c)
				if v := int(x)*int(y) + int(c); int(hi)*10+int(lo) != v || lo >= 10 {
					t.Fatalf("%d*%d+%d: got (%d, %d)", x, y, c, hi, lo)
				}
			}
		}
	}
}
