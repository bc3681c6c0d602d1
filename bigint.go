// Copyright 2022 The Cockroach Authors.
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
	"math/big"
	"slices"
)

// Big returns x as a newly allocated big.Int.
func (x Int[W, R]) Big() *big.Int {
	b := new(big.Int)
	bb := new(big.Int).SetUint64(uint64(base[W, R]()))
	var c big.Int
	for _, d := range x.mag() {
		b.Mul(b, bb)
		b.Add(b, c.SetUint64(uint64(d)))
	}
	if x.neg {
		b.Neg(b)
	}
	return b
}

// FromBig returns an Int with the value of b.
func FromBig[W Word, R Radix[W]](b *big.Int) Int[W, R] {
	if b.Sign() == 0 {
		return zero[W, R]()
	}
	bb := new(big.Int).SetUint64(uint64(base[W, R]()))
	q := new(big.Int).Abs(b)
	var r big.Int
	var abs []W
	for q.Sign() != 0 {
		q.QuoRem(q, bb, &r)
		abs = append(abs, W(r.Uint64()))
	}
	slices.Reverse(abs)
	return Int[W, R]{abs: abs, neg: b.Sign() < 0}
}

// Int64 returns x as an int64. The second result is false if x does not fit,
// in which case the first is undefined.
func (x Int[W, R]) Int64() (int64, bool) {
	b := x.Big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Convert returns x re-chunked into the radix R2.
func Convert[W2 Word, R2 Radix[W2], W Word, R Radix[W]](x Int[W, R]) Int[W2, R2] {
	return MustParseAs[W2, R2](x.String())
}
