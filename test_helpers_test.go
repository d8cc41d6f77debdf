package hexxdump

import (
	"bytes"
	"errors"
)

type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type failAfterWriter struct {
	count int
	fail  int
	buf   bytes.Buffer
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	w.count++
	if w.count > w.fail {
		return 0, errors.New("write err")
	}
	return w.buf.Write(p)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
