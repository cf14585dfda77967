package mason

import (
	"bytes"
	"encoding/binary"
)

// StateBytes is an array of bytes that represent the current state of the
// Mason, as perceived by the outside. If two Masons have the same StateBytes
// they are considered "the same", even though they may have reached that
// state differently.
//
// What counts:
// - the wall
// - the active brick: position, orientation and blocks
// - the number of bricks waiting in the queue
//
// The generation and the clear mode are not part of the state.
func (m *Mason) StateBytes() []byte {
	buf := new(bytes.Buffer)
	write(buf, int64(m.width))
	write(buf, int64(m.height))
	write(buf, m.wall.cells)
	write(buf, m.brick != nil)
	if m.brick != nil {
		write(buf, int64(m.brick.X()))
		write(buf, int64(m.brick.Y()))
		write(buf, int64(m.brick.Orientation()))
		write(buf, int64(m.brick.blocks.Width()))
		write(buf, int64(m.brick.blocks.Height()))
		write(buf, m.brick.blocks.cells)
	}
	write(buf, int64(len(m.brickQueue)))
	return buf.Bytes()
}

func write(buf *bytes.Buffer, data any) {
	_ = binary.Write(buf, binary.LittleEndian, data)
}
