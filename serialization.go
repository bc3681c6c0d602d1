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
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// All encodings store the canonical decimal string, so a value written with
// one radix can be read back with another.

func (x Int[W, R]) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}

func (x *Int[W, R]) UnmarshalText(text []byte) error {
	v, err := ParseAs[W, R](string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int[W, R]) GetBSON() (interface{}, error) {
	return x.String(), nil
}

func (x *Int[W, R]) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return errors.Wrap(err, "SetBSON")
	}
	return x.UnmarshalText([]byte(s))
}

func (x Int[W, R]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

func (x *Int[W, R]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "DecodeMsgpack")
	}
	return x.UnmarshalText([]byte(s))
}
