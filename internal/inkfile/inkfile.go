/* Package inkfile reads and writes ink fixture files.

An ink file holds one handwritten character per line. The first field is the
character the ink is meant to be, followed by one field per stroke. Fields
are separated by semicolons, points by blanks:

	# capital T, bar first
	T ; 100,100 300,100 ; 200,100 200,400

Characters which would confuse the scanner (blank, '#' and ';') are written
as code points, e.g. U+003B. Everything after a '#' is a comment. A record
without strokes is valid; it denotes a character which has not been written
yet.

BSD License

Please refer to the License file in the root directory of this module.
*/
package inkfile

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/skiggle"
)

// Record is a character together with the strokes it has been written with.
type Record struct {
	Char    rune              // the character the ink is meant to be
	Strokes [][]skiggle.Point // strokes in writing order
	Comment string            // rest-of-line comment, if any
	LineNo  int               // line in the input source, 1…n
}

func (rec Record) String() string {
	return fmt.Sprintf("record[at(%d) %#U strokes=%d]", rec.LineNo, rec.Char, len(rec.Strokes))
}

// Records is a list of records, in input order.
type Records struct {
	list *arraylist.List
}

// NewRecords creates an empty record list.
func NewRecords() *Records {
	return &Records{list: arraylist.New()}
}

// Add appends records to the list.
func (rs *Records) Add(recs ...Record) {
	for _, rec := range recs {
		rs.list.Add(rec)
	}
}

// Len returns the number of records.
func (rs *Records) Len() int {
	if rs == nil || rs.list == nil {
		return 0
	}
	return rs.list.Size()
}

// At returns record #i (0…n-1).
func (rs *Records) At(i int) Record {
	v, ok := rs.list.Get(i)
	if !ok {
		return Record{}
	}
	return v.(Record)
}

// Each calls f for every record.
func (rs *Records) Each(f func(i int, rec Record)) {
	rs.list.Each(func(i int, v interface{}) {
		f(i, v.(Record))
	})
}

// Of returns the records for character c.
func (rs *Records) Of(c rune) *Records {
	sel := rs.list.Select(func(_ int, v interface{}) bool {
		return v.(Record).Char == c
	})
	return &Records{list: sel}
}

// Chars returns the characters of all records, in input order.
func (rs *Records) Chars() string {
	var b strings.Builder
	rs.Each(func(_ int, rec Record) {
		b.WriteRune(rec.Char)
	})
	return b.String()
}
