// Copyright 2016 The Cockroach Authors.
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

// Package apint implements arbitrary-precision signed integers stored as
// chunks of decimal digits. Values are immutable: every operation returns a
// new Int and leaves its operands untouched, so an Int may be shared freely
// between goroutines.
//
// The radix is a type parameter. WideInt packs eighteen digits into each
// uint64 chunk and is what Parse returns; NarrowInt keeps one digit per
// chunk.
package apint

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Int is a signed integer of unbounded size whose magnitude is a sequence of
// base-10^w chunks, where w is R's Width.
//
// The zero value is 0 and ready to use.
type Int[W Word, R Radix[W]] struct {
	// abs is the magnitude, most-significant chunk first. It is canonical:
	// non-empty, no leading zero chunk unless it is exactly [0], and every
	// chunk is below the radix. A nil abs is read as zero.
	abs []W
	// neg is set iff the value is strictly negative.
	neg bool
}

// NarrowInt is an Int with one decimal digit per chunk.
type NarrowInt = Int[uint8, Narrow]

// WideInt is an Int with eighteen decimal digits per chunk.
type WideInt = Int[uint64, Wide]

// Parse returns the WideInt represented by s. See ParseAs.
func Parse(s string) (WideInt, error) {
	return ParseAs[uint64, Wide](s)
}

// MustParse is like Parse but panics if s is malformed.
func MustParse(s string) WideInt {
	return MustParseAs[uint64, Wide](s)
}

// ParseAs returns the Int represented by s, which is an optional '-'
// followed by one or more decimal digits. Surrounding whitespace is ignored.
// Leading zeros are dropped and "-0" is zero. Any other input returns an
// error for which errors.Is(err, ErrInvalidFormat) holds.
func ParseAs[W Word, R Radix[W]](s string) (Int[W, R], error) {
	t := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}
	if t == "" {
		return Int[W, R]{}, errors.Wrapf(ErrInvalidFormat, "parse %q: no digits", s)
	}
	for i := 0; i < len(t); i++ {
		if c := t[i]; c < '0' || c > '9' {
			return Int[W, R]{}, errors.Wrapf(ErrInvalidFormat, "parse %q: unexpected %q", s, c)
		}
	}
	t = strings.TrimLeft(t, "0")
	if t == "" {
		return zero[W, R](), nil
	}

	var r R
	w := r.Width()
	abs := make([]W, (len(t)+w-1)/w)
	end := len(t)
	for i := len(abs) - 1; i >= 0; i-- {
		start := end - w
		if start < 0 {
			start = 0
		}
		var v W
		for j := start; j < end; j++ {
			v = v*10 + W(t[j]-'0')
		}
		abs[i] = v
		end = start
	}
	return Int[W, R]{abs: abs, neg: neg}, nil
}

// MustParseAs is like ParseAs but panics if s is malformed.
func MustParseAs[W Word, R Radix[W]](s string) Int[W, R] {
	x, err := ParseAs[W, R](s)
	if err != nil {
		panic(err)
	}
	return x
}

// NewInt returns an Int with value x.
func NewInt[W Word, R Radix[W]](x int64) Int[W, R] {
	if x == 0 {
		return zero[W, R]()
	}
	u := uint64(x)
	if x < 0 {
		// Two's complement negation also covers math.MinInt64.
		u = -u
	}
	b := uint64(base[W, R]())
	var abs []W
	for ; u != 0; u /= b {
		abs = append(abs, W(u%b))
	}
	slices.Reverse(abs)
	return Int[W, R]{abs: abs, neg: x < 0}
}

func zero[W Word, R Radix[W]]() Int[W, R] {
	return Int[W, R]{abs: []W{0}}
}

// mag returns the magnitude of x, mapping the zero value to [0].
func (x Int[W, R]) mag() []W {
	if len(x.abs) == 0 {
		return []W{0}
	}
	return x.abs
}

// String returns the canonical decimal form of x: a '-' for negative values,
// the leading chunk without padding, and every other chunk zero-padded to
// the full chunk width.
func (x Int[W, R]) String() string {
	return string(x.Append(nil))
}

// Append appends the canonical decimal form of x to buf and returns the
// extended buffer.
func (x Int[W, R]) Append(buf []byte) []byte {
	abs := x.mag()
	if x.neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, uint64(abs[0]), 10)
	var r R
	w := r.Width()
	for _, c := range abs[1:] {
		for n := numDigits(uint64(c)); n < w; n++ {
			buf = append(buf, '0')
		}
		buf = strconv.AppendUint(buf, uint64(c), 10)
	}
	return buf
}

// GoString implements fmt.GoStringer.
func (x Int[W, R]) GoString() string {
	var r R
	return fmt.Sprintf("{neg: %t, abs: %v, width: %d}", x.neg, x.mag(), r.Width())
}

// Len returns the number of chunks in the magnitude of x. Zero has one chunk.
func (x Int[W, R]) Len() int {
	return len(x.mag())
}

// IsZero reports whether x is 0.
func (x Int[W, R]) IsZero() bool {
	return isZeroAbs(x.mag())
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Int[W, R]) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -x. The negation of zero is zero.
func (x Int[W, R]) Neg() Int[W, R] {
	if x.IsZero() {
		return zero[W, R]()
	}
	return Int[W, R]{abs: x.abs, neg: !x.neg}
}

// Abs returns |x|.
func (x Int[W, R]) Abs() Int[W, R] {
	return Int[W, R]{abs: x.mag()}
}

// CmpAbs compares the magnitudes of x and y, ignoring their signs.
func CmpAbs[W Word, R Radix[W]](x, y Int[W, R]) Ordering {
	return cmpAbs(x.mag(), y.mag())
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int[W, R]) Cmp(y Int[W, R]) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}
	c := int(cmpAbs(x.mag(), y.mag()))
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x Int[W, R]) Equal(y Int[W, R]) bool {
	return x.neg == y.neg && cmpAbs(x.mag(), y.mag()) == Equal
}

// Add returns x+y.
func (x Int[W, R]) Add(y Int[W, R]) Int[W, R] {
	switch {
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	case x.neg == y.neg:
		return Int[W, R]{abs: addAbs[W, R](x.abs, y.abs), neg: x.neg}
	default:
		// x + y = sign(x) * (|x| - |y|) when the signs differ.
		return diff[W, R](x.abs, y.abs, x.neg)
	}
}

// Sub returns x-y.
func (x Int[W, R]) Sub(y Int[W, R]) Int[W, R] {
	switch {
	case y.IsZero():
		return x
	case x.IsZero():
		return y.Neg()
	case x.neg != y.neg:
		// x - y = sign(x) * (|x| + |y|) when the signs differ.
		return Int[W, R]{abs: addAbs[W, R](x.abs, y.abs), neg: x.neg}
	default:
		return diff[W, R](x.abs, y.abs, x.neg)
	}
}

// Mul returns x*y.
func (x Int[W, R]) Mul(y Int[W, R]) Int[W, R] {
	if x.IsZero() || y.IsZero() {
		return zero[W, R]()
	}
	return Int[W, R]{abs: mulAbs[W, R](x.abs, y.abs), neg: x.neg != y.neg}
}

// diff returns s*(|x|-|y|), where s is -1 if neg is set and +1 otherwise.
func diff[W Word, R Radix[W]](x, y []W, neg bool) Int[W, R] {
	switch cmpAbs(x, y) {
	case Equal:
		return zero[W, R]()
	case Greater:
		return Int[W, R]{abs: subAbs[W, R](x, y), neg: neg}
	default:
		return Int[W, R]{abs: subAbs[W, R](y, x), neg: !neg}
	}
}
