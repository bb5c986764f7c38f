package rmlines

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

const pointSize = 6 * 4 // six float32 values

// Decode reads a page file.
func Decode(r io.Reader) (*Page, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read page file")
	}
	page := &Page{}
	if err = page.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return page, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (page *Page) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return err
	}
	page.Version = r.version
	nbLayers, err := r.readCount(4)
	if err != nil {
		return errors.Wrap(err, "layer count")
	}
	page.Layers = make([]Layer, nbLayers)
	for i := range page.Layers {
		nbLines, err := r.readCount(4)
		if err != nil {
			return errors.Wrapf(err, "layer #%d", i)
		}
		page.Layers[i].Lines = make([]Line, nbLines)
		for j := range page.Layers[i].Lines {
			if page.Layers[i].Lines[j], err = r.readLine(); err != nil {
				return errors.Wrapf(err, "layer #%d, line #%d", i, j)
			}
		}
	}
	tracer().Debugf("decoded page v%d with %d layers", page.Version, len(page.Layers))
	return nil
}

type reader struct {
	*bytes.Reader
	version Version
}

func newReader(data []byte) reader {
	return reader{Reader: bytes.NewReader(data), version: V5}
}

func (r *reader) checkHeader() error {
	buf := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrUnknownHeader
	}
	switch string(buf) {
	case HeaderV5:
		r.version = V5
	case HeaderV3:
		r.version = V3
	default:
		return ErrUnknownHeader
	}
	return nil
}

func (r *reader) readNumber() (uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, errors.Wrap(err, "cannot read number")
	}
	return n, nil
}

// readCount reads the number of items following, each at least minSize
// bytes long. Counts which exceed the remaining input are rejected.
func (r *reader) readCount(minSize int) (int, error) {
	n, err := r.readNumber()
	if err != nil {
		return 0, err
	}
	if int64(n)*int64(minSize) > int64(r.Len()) {
		return 0, errors.Errorf("count %d exceeds input", n)
	}
	return int(n), nil
}

func (r *reader) readLine() (Line, error) {
	var line Line
	fields := []interface{}{&line.BrushType, &line.BrushColor, &line.Padding, &line.BrushSize}
	if r.version == V5 {
		fields = append(fields, &line.Unknown)
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return line, errors.Wrap(err, "cannot read line")
		}
	}
	nbPoints, err := r.readCount(pointSize)
	if err != nil {
		return line, err
	}
	if nbPoints == 0 {
		return line, nil
	}
	line.Points = make([]Point, nbPoints)
	if err := binary.Read(r, binary.LittleEndian, line.Points); err != nil {
		return line, errors.Wrap(err, "cannot read points")
	}
	return line, nil
}
