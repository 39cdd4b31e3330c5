package demo

import "io"

// ErrWriter keeps the first write error of W in Err.
// Once Err is set, every further write is dropped and returns Err.
//
// Observer listeners have no error return,
// so a demonstration hands them an ErrWriter and checks Err when the broadcast is over.
type ErrWriter struct {
	W   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.W.Write(p)
	if err != nil {
		w.Err = err
	}
	return n, err
}
