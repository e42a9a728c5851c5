package rw

import (
	"bytes"
	"encoding/binary"
	"math"
)

// ReaderWriter is a little-endian scratch buffer used to stage vertex and
// index data before a GL upload. It is reused across frames via Reset.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
}

func NewWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

// Reset empties the buffer but keeps its capacity.
func (w *ReaderWriter) Reset() {
	w.rw.Reset()
}

func (w *ReaderWriter) Grow(n int) {
	w.rw.Grow(n)
}

func (w *ReaderWriter) ReadUInt16() uint16 {
	_, err := w.rw.Read(w.dataBuf[:2])
	if err != nil {
		panic(err)
	}
	return w.order.Uint16(w.dataBuf[:2])
}

func (w *ReaderWriter) ReadUInt16s(value []uint16) {
	for i := range value {
		value[i] = w.ReadUInt16()
	}
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	res, err := w.rw.ReadByte()
	if err != nil {
		panic(err)
	}
	return res
}

func (w *ReaderWriter) ReadUInt8s(value []uint8) {
	for i := range value {
		value[i] = w.ReadUInt8()
	}
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	_, err := w.rw.Read(w.dataBuf[:4])
	if err != nil {
		panic(err)
	}
	return w.order.Uint32(w.dataBuf[:4])
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

func (w *ReaderWriter) WriteUInt8(v uint8) {
	w.rw.WriteByte(v)
}

func (w *ReaderWriter) WriteUInt8s(v []uint8) {
	w.rw.Write(v)
}

func (w *ReaderWriter) WriteUInt16(v uint16) {
	w.order.PutUint16(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteUInt16s(v []uint16) {
	for _, tmp := range v {
		w.WriteUInt16(tmp)
	}
}

func (w *ReaderWriter) WriteUInt32(v uint32) {
	w.order.PutUint32(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32(v float32) {
	w.order.PutUint32(w.dataBuf, math.Float32bits(v))
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32s(v []float32) {
	for _, tmp := range v {
		w.WriteFloat32(tmp)
	}
}

func (w *ReaderWriter) Skip(size int) {
	w.rw.Next(size)
}

// Bytes returns the unread portion of the buffer. The slice is only valid
// until the next write or Reset.
func (w *ReaderWriter) Bytes() []byte {
	return w.rw.Bytes()
}

func (w *ReaderWriter) PadZero(n int) {
	for i := 0; i < n; i++ {
		w.rw.WriteByte(0)
	}
}

func (w *ReaderWriter) Size() int {
	return w.rw.Len()
}
