package rmlines

import (
	"bytes"
	"encoding/binary"
)

// MarshalBinary implements encoding.BinaryMarshaler. Pages are always
// written in version 5 format.
func (page *Page) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(HeaderV5)
	w := func(v interface{}) {
		// writes to a bytes.Buffer do not fail
		_ = binary.Write(&b, binary.LittleEndian, v)
	}
	w(uint32(len(page.Layers)))
	for _, layer := range page.Layers {
		w(uint32(len(layer.Lines)))
		for _, line := range layer.Lines {
			w(line.BrushType)
			w(line.BrushColor)
			w(line.Padding)
			w(line.BrushSize)
			w(line.Unknown)
			w(uint32(len(line.Points)))
			w(line.Points)
		}
	}
	return b.Bytes(), nil
}
