package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/bjaus/pretty/doc"
)

// TimeLayout is the calendar format used for [Time].
const TimeLayout = time.RFC1123

// Time is a timestamp, printed in [TimeLayout].
type Time time.Time

func (t Time) DocPrec(int) doc.Doc {
	return doc.Text(time.Time(t).Format(TimeLayout))
}

// Opaque returns a printer for a value without structure of its own, such
// as an indexed set, that prints its String result verbatim.
func Opaque(s fmt.Stringer) Printer { return opaque{s} }

type opaque struct {
	s fmt.Stringer
}

func (o opaque) DocPrec(int) doc.Doc {
	if o.s == nil {
		return doc.Text("<nil>")
	}
	lines := strings.Split(o.s.String(), "\n")
	docs := make([]doc.Doc, len(lines))
	for i, ln := range lines {
		docs[i] = doc.Text(ln)
	}
	return doc.Vcat(docs...)
}
