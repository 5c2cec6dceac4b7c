// An error implementation that saves the line number and the line we
// were trying to read.

package mmcif

import (
	"strconv"
)

const maxMsgLen = 70

type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error takes what is known about the state and returns a single
// string. This includes the number of the last line read and any
// description of the error we have.
func (e *readError) Error() string {
	var errmsg string
	if e.n != 0 {
		errmsg = "Line: " + strconv.FormatInt(int64(e.n), 10) + " "
	}
	errmsg += e.desc
	if e.n != 0 && e.inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.inline)
	}
	return errmsg
}
