// Package nbt writes the big-endian Named Binary Tag format used by 1.8
// chunk and level files.
package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// NBT tag type IDs.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
)

// ErrUnbalanced is reported when EndCompound has no open compound to close.
var ErrUnbalanced = errors.New("nbt: end of compound without matching begin")

// Writer writes NBT binary data to an io.Writer.
// All write methods accumulate errors internally; call Err() after writing
// to check for failures.
type Writer struct {
	w     io.Writer
	err   error
	depth int
}

// NewWriter creates a new NBT Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered during writing.
func (w *Writer) Err() error {
	return w.err
}

// Depth returns the number of compounds currently open.
func (w *Writer) Depth() int {
	return w.depth
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) write(data []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(data)
}

func (w *Writer) putByte(v byte) {
	w.write([]byte{v})
}

func (w *Writer) putUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putInt32(v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	w.write(buf[:])
}

func (w *Writer) putInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	w.write(buf[:])
}

func (w *Writer) putString(s string) {
	if len(s) > math.MaxUint16 {
		w.fail(fmt.Errorf("nbt: string of %d bytes exceeds %d", len(s), math.MaxUint16))
		return
	}
	w.putUint16(uint16(len(s)))
	if len(s) > 0 {
		w.write([]byte(s))
	}
}

func (w *Writer) putLength(n int) {
	if n > math.MaxInt32 {
		w.fail(fmt.Errorf("nbt: array of %d elements exceeds %d", n, math.MaxInt32))
		return
	}
	w.putInt32(int32(n))
}

func (w *Writer) writeTagHeader(tagType byte, name string) {
	w.putByte(tagType)
	w.putString(name)
}

// BeginCompound writes a named compound tag header. The root tag of a chunk
// is named "".
func (w *Writer) BeginCompound(name string) {
	w.writeTagHeader(TagCompound, name)
	w.depth++
}

// BeginListElement opens an unnamed compound inside a list of compounds,
// which carries no tag header of its own.
func (w *Writer) BeginListElement() {
	w.depth++
}

// EndCompound writes an End tag to close a compound.
func (w *Writer) EndCompound() {
	if w.depth == 0 {
		w.fail(ErrUnbalanced)
		return
	}
	w.depth--
	w.putByte(TagEnd)
}

// WriteTagByte writes a named byte tag.
func (w *Writer) WriteTagByte(name string, v byte) {
	w.writeTagHeader(TagByte, name)
	w.putByte(v)
}

// WriteInt writes a named int tag.
func (w *Writer) WriteInt(name string, v int32) {
	w.writeTagHeader(TagInt, name)
	w.putInt32(v)
}

// WriteLong writes a named long tag.
func (w *Writer) WriteLong(name string, v int64) {
	w.writeTagHeader(TagLong, name)
	w.putInt64(v)
}

// WriteByteArray writes a named byte array tag.
func (w *Writer) WriteByteArray(name string, v []byte) {
	w.writeTagHeader(TagByteArray, name)
	w.putLength(len(v))
	w.write(v)
}

// WriteString writes a named string tag.
func (w *Writer) WriteString(name string, v string) {
	w.writeTagHeader(TagString, name)
	w.putString(v)
}

// WriteIntArray writes a named int array tag.
func (w *Writer) WriteIntArray(name string, v []int32) {
	w.writeTagHeader(TagIntArray, name)
	w.putLength(len(v))
	buf := make([]byte, 4*len(v))
	for i, val := range v {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(val))
	}
	w.write(buf)
}

// BeginList writes a named list tag header. Elements follow without names;
// compound elements are opened with BeginListElement.
func (w *Writer) BeginList(name string, elemType byte, count int) {
	w.writeTagHeader(TagList, name)
	w.putByte(elemType)
	w.putLength(count)
}
