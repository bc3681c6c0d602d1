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
	"math/bits"
)

// Word is the set of types a chunk may be stored in.
type Word interface {
	~uint8 | ~uint64
}

// Radix selects how many decimal digits each chunk of an Int holds, and with
// it the arithmetic used to multiply two chunks. A Radix is a zero-size type
// used only as a type parameter; its methods must not depend on the receiver.
type Radix[W Word] interface {
	// Width is the number of decimal digits held by one chunk.
	Width() int
	// mulAdd returns hi, lo such that x*y + c = hi*B + lo, with lo < B.
	mulAdd(x, y, c W) (hi, lo W)
}

// Narrow stores one decimal digit per uint8 chunk.
type Narrow struct{}

// Width implements Radix.
func (Narrow) Width() int { return 1 }

func (Narrow) mulAdd(x, y, c uint8) (hi, lo uint8) {
	t := uint16(x)*uint16(y) + uint16(c)
	return uint8(t / 10), uint8(t % 10)
}

// Wide stores eighteen decimal digits per uint64 chunk. It is the default
// radix: 10^18 is the largest power of ten for which a chunk sum plus carry
// still fits in a uint64.
type Wide struct{}

// Width implements Radix.
func (Wide) Width() int { return wideWidth }

const (
	wideWidth = 18
	wideBase  = 1_000_000_000_000_000_000
)

func (Wide) mulAdd(x, y, c uint64) (hi, lo uint64) {
	h, l := bits.Mul64(x, y)
	l, carry := bits.Add64(l, c, 0)
	h += carry
	// h < wideBase since x, y, c < wideBase, so Div64 cannot overflow.
	return bits.Div64(h, l, wideBase)
}

var (
	_ Radix[uint8]  = Narrow{}
	_ Radix[uint64] = Wide{}
)

func init() {
	mustValidRadix[uint8, Narrow]()
	mustValidRadix[uint64, Wide]()
}

// base returns the chunk radix B of R.
func base[W Word, R Radix[W]]() W {
	var r R
	b, _ := lookupPow10(r.Width())
	return W(b)
}

// mustValidRadix panics if the chunk type W of R cannot hold the values the
// arithmetic needs: a digit B-1, a sum 2(B-1)+1, and a multiply-accumulate
// (B-1)(B-1)+(B-1), which must split into hi = B-1, lo = 0.
func mustValidRadix[W Word, R Radix[W]]() {
	var r R
	b, ok := lookupPow10(r.Width())
	if !ok || r.Width() < 1 {
		panic(fmt.Sprintf("apint: radix width %d out of range", r.Width()))
	}
	top := uint64(^W(0))
	if b-1 > top || b-1 > (top-1)/2 {
		panic(fmt.Sprintf("apint: radix 10^%d does not fit chunk type %T", r.Width(), W(0)))
	}
	d := W(b - 1)
	if hi, lo := r.mulAdd(d, d, d); hi != d || lo != 0 {
		panic(fmt.Sprintf("apint: radix 10^%d multiply-accumulate overflows: got (%d, %d)", r.Width(), hi, lo))
	}
}
