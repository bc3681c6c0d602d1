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

// Op is a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	// OpQuo is recognized so callers can name it, but Apply always rejects
	// it: apint does not divide.
	OpQuo Op = '/'
)

func (op Op) String() string {
	return string(op)
}

// ParseOp returns the operator spelled by tok. Tokens other than "+", "-",
// "*" and "/" return an error for which errors.Is(err,
// ErrUnsupportedOperation) holds.
func ParseOp(tok string) (Op, error) {
	switch tok {
	case "+", "-", "*", "/":
		return Op(tok[0]), nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedOperation, "operator %q", tok)
	}
}

// Apply returns x op y. OpQuo and any unknown operator return an error for
// which errors.Is(err, ErrUnsupportedOperation) holds.
func Apply[W Word, R Radix[W]](op Op, x, y Int[W, R]) (Int[W, R], error) {
	switch op {
	case OpAdd:
		return x.Add(y), nil
	case OpSub:
		return x.Sub(y), nil
	case OpMul:
		return x.Mul(y), nil
	default:
		return Int[W, R]{}, errors.Wrapf(ErrUnsupportedOperation, "operator %q", string(op))
	}
}
