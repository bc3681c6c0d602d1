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

package apint

import "github.com/pkg/errors"

var (
	// ErrInvalidFormat is returned, wrapped, when text is not an optional
	// '-' followed by decimal digits.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnsupportedOperation is returned, wrapped, when an operator other
	// than addition, subtraction or multiplication is requested.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// ErrInt performs operations on Ints and collects errors during operations.
// If an error is already set, the operation is skipped and returns zero.
// Designed to be used for many operations in a row, with a single error
// check at the end.
type ErrInt[W Word, R Radix[W]] struct {
	Err error
}

// Parse performs ParseAs(s).
func (e *ErrInt[W, R]) Parse(s string) Int[W, R] {
	if e.Err != nil {
		return Int[W, R]{}
	}
	var x Int[W, R]
	x, e.Err = ParseAs[W, R](s)
	return x
}

// Apply performs Apply(op, x, y).
func (e *ErrInt[W, R]) Apply(op Op, x, y Int[W, R]) Int[W, R] {
	if e.Err != nil {
		return Int[W, R]{}
	}
	var z Int[W, R]
	z, e.Err = Apply(op, x, y)
	return z
}

// Add performs x.Add(y).
func (e *ErrInt[W, R]) Add(x, y Int[W, R]) Int[W, R] {
	return e.Apply(OpAdd, x, y)
}

// Sub performs x.Sub(y).
func (e *ErrInt[W, R]) Sub(x, y Int[W, R]) Int[W, R] {
	return e.Apply(OpSub, x, y)
}

// Mul performs x.Mul(y).
func (e *ErrInt[W, R]) Mul(x, y Int[W, R]) Int[W, R] {
	return e.Apply(OpMul, x, y)
}
