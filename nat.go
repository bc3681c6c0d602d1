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

// This file holds the unsigned magnitude algorithms. A magnitude is a
// canonical chunk slice, most-significant chunk first: never empty, no
// leading zero chunk unless it is exactly [0], every chunk below the radix.
// None of these functions modify their arguments.

// cmpAbs compares two canonical magnitudes: the longer one is larger, and
// magnitudes of equal length compare chunk by chunk from the most
// significant end.
func cmpAbs[W Word](x, y []W) Ordering {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return Less
		}
		return Greater
	}
	for i := range x {
		if x[i] < y[i] {
			return Less
		}
		if x[i] > y[i] {
			return Greater
		}
	}
	return Equal
}

// isZeroAbs reports whether x is the canonical zero magnitude.
func isZeroAbs[W Word](x []W) bool {
	return len(x) == 1 && x[0] == 0
}

// addAbs returns x+y. The result has at most max(len(x), len(y))+1 chunks.
func addAbs[W Word, R Radix[W]](x, y []W) []W {
	if len(x) < len(y) {
		x, y = y, x
	}
	b := base[W, R]()
	// z[k+1] lines up with x[k]; z[0] is reserved for a final carry.
	z := make([]W, len(x)+1)
	var carry W
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		s := x[i] + carry
		if j >= 0 {
			s += y[j]
			j--
		}
		if s >= b {
			z[i+1], carry = s-b, 1
		} else {
			z[i+1], carry = s, 0
		}
	}
	if carry != 0 {
		z[0] = carry
		return z
	}
	return z[1:]
}

// subAbs returns x-y. It requires x >= y. The result is trimmed to canonical
// form and may be shorter than either operand.
func subAbs[W Word, R Radix[W]](x, y []W) []W {
	b := base[W, R]()
	z := make([]W, len(x))
	var borrow W
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		d := borrow
		if j >= 0 {
			d += y[j]
			j--
		}
		if x[i] < d {
			z[i], borrow = x[i]+b-d, 1
		} else {
			z[i], borrow = x[i]-d, 0
		}
	}
	if borrow != 0 {
		panic("apint: subAbs underflow")
	}
	return trimAbs(z)
}

// mulAbs returns x*y by long multiplication: each chunk of y, from the least
// significant end, scales all of x, is shifted into place, and is summed
// into the result. The result has at most len(x)+len(y) chunks.
func mulAbs[W Word, R Radix[W]](x, y []W) []W {
	if isZeroAbs(x) || isZeroAbs(y) {
		return []W{0}
	}
	z := []W{0}
	for k := 0; k < len(y); k++ {
		d := y[len(y)-1-k]
		if d == 0 {
			continue
		}
		p := mulChunk[W, R](x, d, k)
		z = addAbs[W, R](z, p)
	}
	return z
}

// mulChunk returns x*d shifted left by k chunks. d must be non-zero, so the
// result needs no trimming.
func mulChunk[W Word, R Radix[W]](x []W, d W, k int) []W {
	var r R
	// z[i+1] lines up with x[i]; z[0] is reserved for a final carry, and the
	// k trailing chunks stay zero.
	z := make([]W, len(x)+1+k)
	var carry W
	for i := len(x) - 1; i >= 0; i-- {
		carry, z[i+1] = r.mulAdd(x[i], d, carry)
	}
	if carry != 0 {
		z[0] = carry
		return z
	}
	return z[1:]
}

// trimAbs strips leading zero chunks, keeping a single zero chunk for zero.
func trimAbs[W Word](z []W) []W {
	if len(z) == 0 {
		return []W{0}
	}
	i := 0
	for i < len(z)-1 && z[i] == 0 {
		i++
	}
	return z[i:]
}
