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

import (
	"encoding/json"
	"testing"

	"github.com/globalsign/mgo/bson"
	"github.com/vmihailenco/msgpack/v5"
)

var serializationValues = []string{
	"0",
	"-1",
	"1234",
	"-1000000000000000000",
	"98765432109876543210987654321098765432109876543210",
}

func TestInt_BSON(t *testing.T) {
	type XXX struct {
		Value WideInt
	}

	for _, s := range serializationValues {
		x := XXX{Value: MustParse(s)}

		data, err := bson.Marshal(x)
		if err != nil {
			t.Error("marshal bson:", err)
			return
		}

		var y XXX
		err = bson.Unmarshal(data, &y)
		if err != nil {
			t.Error("unmarshal bson:", err)
			return
		}
		if !x.Value.Equal(y.Value) {
			t.Error("bson marshal/unmarshal not equal:", x, "!=", y)
			return
		}
	}
}

func TestInt_Msgpack(t *testing.T) {
	type XXX struct {
		Value NarrowInt
	}

	for _, s := range serializationValues {
		x := XXX{Value: MustParseAs[uint8, Narrow](s)}

		data, err := msgpack.Marshal(&x)
		if err != nil {
			t.Fatal("marshal msgpack:", err)
		}

		// The encoding is radix independent.
		var y struct {
			Value WideInt
		}
		if err := msgpack.Unmarshal(data, &y); err != nil {
			t.Fatal("unmarshal msgpack:", err)
		}
		if y.Value.String() != s {
			t.Fatalf("msgpack marshal/unmarshal not equal: %s != %s", y.Value, s)
		}
	}
}

func TestInt_JSON(t *testing.T) {
	var v struct {
		A WideInt
		B NarrowInt
	}
	if err := json.Unmarshal([]byte(`{"A": "-0042", "B": "100"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.A.String() != "-42" || v.B.String() != "100" {
		t.Fatalf("unexpected %s, %s", v.A, v.B)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(b); s != `{"A":"-42","B":"100"}` {
		t.Fatalf("got %s", s)
	}
	if err := json.Unmarshal([]byte(`{"A": "4e2"}`), &v); err == nil {
		t.Fatal("expected error")
	}
}
