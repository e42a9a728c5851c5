// Package message encodes GL call traces with the protobuf wire format.
//
// A trace is a sequence of field 1 records, each holding one Call:
//
//	1: name     (bytes)
//	2: ints     (packed zigzag varint)
//	3: floats   (packed fixed32)
//	4: data_len (varint)
package message

import (
	"errors"
	"fmt"
	"math"

	"github.com/gorustyt/glgui/common"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	traceCallField protowire.Number = 1

	callNameField    protowire.Number = 1
	callIntsField    protowire.Number = 2
	callFloatsField  protowire.Number = 3
	callDataLenField protowire.Number = 4
)

// Call is one recorded GL call. Pixel and buffer payloads are not stored,
// only their length.
type Call struct {
	Name    string
	Ints    []int64
	Floats  []float32
	DataLen int64
}

func (c Call) String() string {
	s := c.Name + fmt.Sprint(c.Ints)
	if len(c.Floats) > 0 {
		s += fmt.Sprint(c.Floats)
	}
	if c.DataLen > 0 {
		s += fmt.Sprintf("<%d bytes>", c.DataLen)
	}
	return s
}

func encodeCall(c Call) []byte {
	var b []byte
	b = protowire.AppendTag(b, callNameField, protowire.BytesType)
	b = protowire.AppendString(b, c.Name)
	if len(c.Ints) > 0 {
		var packed []byte
		for _, v := range c.Ints {
			packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(v))
		}
		b = protowire.AppendTag(b, callIntsField, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	if len(c.Floats) > 0 {
		var packed []byte
		for _, v := range c.Floats {
			packed = protowire.AppendFixed32(packed, math.Float32bits(v))
		}
		b = protowire.AppendTag(b, callFloatsField, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	if c.DataLen != 0 {
		b = protowire.AppendTag(b, callDataLenField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(c.DataLen))
	}
	return b
}

func EncodeCalls(calls []Call) (data []byte) {
	for _, c := range calls {
		data = protowire.AppendTag(data, traceCallField, protowire.BytesType)
		data = protowire.AppendBytes(data, encodeCall(c))
	}
	return data
}

func DecodeCalls(data []byte) (calls []Call, err error) {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		if num != traceCallField || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			continue
		}
		body, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		c, err := decodeCall(body)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, nil
}

func decodeCall(data []byte) (c Call, err error) {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return c, protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == callNameField && typ == protowire.BytesType:
			var s string
			s, n = protowire.ConsumeString(data)
			c.Name = s
		case num == callIntsField && typ == protowire.BytesType:
			var packed []byte
			packed, n = protowire.ConsumeBytes(data)
			for len(packed) > 0 {
				v, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return c, protowire.ParseError(m)
				}
				c.Ints = append(c.Ints, protowire.DecodeZigZag(v))
				packed = packed[m:]
			}
		case num == callFloatsField && typ == protowire.BytesType:
			var packed []byte
			packed, n = protowire.ConsumeBytes(data)
			if len(packed)%4 != 0 {
				return c, errors.New("truncated float list")
			}
			for len(packed) > 0 {
				v, m := protowire.ConsumeFixed32(packed)
				common.AssertTrue(m == 4)
				c.Floats = append(c.Floats, math.Float32frombits(v))
				packed = packed[m:]
			}
		case num == callDataLenField && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(data)
			c.DataLen = int64(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return c, protowire.ParseError(n)
		}
		data = data[n:]
	}
	return c, nil
}
