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

// pow10Table maps a chunk width to the radix of that width: pow10Table[w]
// is 10^w. 10^19 is the largest power of ten that fits in a uint64, so no
// radix may be wider than 19 digits.
const pow10TableSize = 19

var pow10Table = func() (t [pow10TableSize + 1]uint64) {
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// lookupPow10 returns 10^w and whether w is within the table.
func lookupPow10(w int) (uint64, bool) {
	if w >= 0 && w < len(pow10Table) {
		return pow10Table[w], true
	}
	return 0, false
}

// numDigits returns the number of decimal digits in x. Zero has one digit.
func numDigits(x uint64) int {
	for i := 1; i < len(pow10Table); i++ {
		if x < pow10Table[i] {
			return i
		}
	}
	return len(pow10Table)
}
