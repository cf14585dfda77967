package play

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize writes fixed-size data in little endian.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

// SerializeSlice writes the length of s followed by its elements.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

// decoder reads what Serialize wrote. The first error sticks and every read
// after it does nothing.
type decoder struct {
	r   *bytes.Reader
	err error
}

func (d *decoder) read(data any) {
	if d.err != nil {
		return
	}
	d.err = binary.Read(d.r, binary.LittleEndian, data)
}

func deserializeSlice[T any](d *decoder, s *[]T) {
	var n int64
	d.read(&n)
	if d.err != nil {
		return
	}
	var zero T
	size := int64(binary.Size(zero))
	if n < 0 || size <= 0 || n*size > int64(d.r.Len()) {
		d.err = fmt.Errorf("invalid slice length: %d", n)
		return
	}
	*s = make([]T, n)
	d.read(*s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := zlib.NewWriter(buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
