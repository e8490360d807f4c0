package gradle

import (
	"bytes"

	"github.com/relforge/relforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// logWriter forwards subprocess output to the logger line by line,
// buffering partial writes until a newline arrives.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) logLine(line []byte) {
	msg := string(bytes.TrimSuffix(line, []byte("\r")))
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}
