// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

//Message 可以编码进状态数据库, 交易和回执的结构
type Message interface {
	Marshal() []byte
	Unmarshal(data []byte) error
}

//Encode 编码
func Encode(data Message) []byte {
	return data.Marshal()
}

//Decode 解码
func Decode(data []byte, msg Message) error {
	return msg.Unmarshal(data)
}

//Encoder protobuf 字段编码, 零值字段不写入
type Encoder struct {
	buf []byte
}

//Uint64 varint
func (e *Encoder) Uint64(num protowire.Number, v uint64) *Encoder {
	if v == 0 {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
	return e
}

//Int64 varint
func (e *Encoder) Int64(num protowire.Number, v int64) *Encoder {
	return e.Uint64(num, uint64(v))
}

//Int32 varint
func (e *Encoder) Int32(num protowire.Number, v int32) *Encoder {
	return e.Uint64(num, uint64(int64(v)))
}

//Bool varint
func (e *Encoder) Bool(num protowire.Number, v bool) *Encoder {
	return e.Uint64(num, protowire.EncodeBool(v))
}

//Bytes length-delimited
func (e *Encoder) Bytes(num protowire.Number, v []byte) *Encoder {
	if len(v) == 0 {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, v)
	return e
}

//String length-delimited
func (e *Encoder) String(num protowire.Number, v string) *Encoder {
	if v == "" {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
	return e
}

//Message 嵌套结构, nil 不写入, 空结构写入长度0
func (e *Encoder) Message(num protowire.Number, m Message) *Encoder {
	if isNilMessage(m) {
		return e
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, m.Marshal())
	return e
}

//Encoded 编码结果
func (e *Encoder) Encoded() []byte {
	if e.buf == nil {
		return []byte{}
	}
	return e.buf
}

//Field 解码出来的一个字段
type Field struct {
	Num   protowire.Number
	Type  protowire.Type
	value uint64
	data  []byte
}

//Int64 值
func (f Field) Int64() int64 { return int64(f.value) }

//Int32 值
func (f Field) Int32() int32 { return int32(f.value) }

//Uint64 值
func (f Field) Uint64() uint64 { return f.value }

//Bool 值
func (f Field) Bool() bool { return protowire.DecodeBool(f.value) }

//String 值
func (f Field) String() string { return string(f.data) }

//Bytes 值的拷贝
func (f Field) Bytes() []byte {
	b := make([]byte, len(f.data))
	copy(b, f.data)
	return b
}

//Decode 解码嵌套结构
func (f Field) Decode(m Message) error {
	return m.Unmarshal(f.data)
}

//DecodeFields 逐个字段解码, 未知的字段跳过
func DecodeFields(b []byte, fn func(f Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		b = b[n:]
		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			f.value, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.data, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		b = b[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func isNilMessage(m Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
