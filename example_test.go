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

package apint_test

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apint"
)

func ExampleParse() {
	for _, s := range []string{"007", "-0", "-123456789012345678901234567890", "12e3"} {
		x, err := apint.Parse(s)
		fmt.Printf("%q: %s, len: %d, err: %v\n", s, x, x.Len(), err)
	}
	// Output: "007": 7, len: 1, err: <nil>
	// "-0": 0, len: 1, err: <nil>
	// "-123456789012345678901234567890": -123456789012345678901234567890, len: 2, err: <nil>
	// "12e3": 0, len: 1, err: parse "12e3": unexpected 'e': invalid format
}

func ExampleInt_Add() {
	x := apint.MustParse("999999999999999999")
	one := apint.MustParse("1")
	z := x.Add(one)
	fmt.Printf("%s (%d chunks)\n", z, z.Len())
	// Output: 1000000000000000000 (2 chunks)
}

func ExampleInt_Sub() {
	fmt.Println(apint.MustParse("100").Sub(apint.MustParse("999")))
	fmt.Println(apint.MustParse("5").Sub(apint.MustParse("5")))
	// Output: -899
	// 0
}

func ExampleInt_Mul() {
	x := apint.MustParseAs[uint8, apint.Narrow]("123456789123456789")
	y := apint.MustParseAs[uint8, apint.Narrow]("-2")
	fmt.Println(x.Mul(y))
	// Output: -246913578246913578
}

func ExampleApply() {
	x := apint.MustParse("84")
	y := apint.MustParse("2")
	for _, tok := range []string{"+", "-", "*", "/", "%"} {
		op, err := apint.ParseOp(tok)
		if err != nil {
			fmt.Println(err)
			continue
		}
		z, err := apint.Apply(op, x, y)
		if errors.Is(err, apint.ErrUnsupportedOperation) {
			fmt.Println(err)
			continue
		}
		fmt.Println(z)
	}
	// Output: 86
	// 82
	// 168
	// operator "/": unsupported operation
	// operator "%": unsupported operation
}

func ExampleErrInt() {
	var ed apint.ErrInt[uint64, apint.Wide]
	x := ed.Parse("10")
	fmt.Printf("%s, err: %v\n", x, ed.Err)
	x = ed.Add(x, ed.Parse("20"))
	fmt.Printf("%s, err: %v\n", x, ed.Err)
	x = ed.Apply(apint.OpQuo, x, ed.Parse("3"))
	fmt.Printf("%s, err: %v\n", x, ed.Err)
	// The multiplication doesn't occur and doesn't change the error.
	x = ed.Mul(x, ed.Parse("2"))
	fmt.Printf("%s, err: %v\n", x, ed.Err)
	// Output: 10, err: <nil>
	// 30, err: <nil>
	// 0, err: operator "/": unsupported operation
	// 0, err: operator "/": unsupported operation
}
