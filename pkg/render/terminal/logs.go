package terminal

import (
	"bytes"
	"io"
	"log"
)

// LogHold keeps log output away from the screen while tcell owns it and
// writes it out once the screen is gone.
type LogHold struct {
	buf bytes.Buffer
	out io.Writer
}

// HoldLogs redirects the standard logger into a buffer until Release.
func HoldLogs(out io.Writer) *LogHold {
	h := &LogHold{out: out}
	log.SetOutput(&h.buf)
	return h
}

// Release points the standard logger back at out and writes everything held
// so far. Calling it again is harmless.
func (h *LogHold) Release() {
	log.SetOutput(h.out)
	if h.buf.Len() == 0 {
		return
	}
	h.out.Write(h.buf.Bytes())
	h.buf.Reset()
}
