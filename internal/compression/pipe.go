package compression

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// transformFunc turns one whole input buffer into one whole output buffer.
type transformFunc func([]byte) ([]byte, error)

// pipeCore backs one reader/writer pair. The writer collects input until
// Close, Close runs the transform, and only then does the reader produce
// output. Reading before the writer is closed is an error, not a block.
type pipeCore struct {
	lock      sync.Mutex
	closed    bool
	failed    error
	transform transformFunc
	input     bytes.Buffer
	output    bytes.Buffer
}

type pipeReader struct {
	core *pipeCore
}

type pipeWriter struct {
	core *pipeCore
}

// newTransformPipe wires a whole-buffer transform into the reader/writer
// pair shape the algorithm factories hand out.
func newTransformPipe(transform transformFunc) (io.ReadCloser, io.WriteCloser) {
	core := &pipeCore{transform: transform}
	return &pipeReader{core: core}, &pipeWriter{core: core}
}

func (pw *pipeWriter) Write(data []byte) (int, error) {
	pw.core.lock.Lock()
	defer pw.core.lock.Unlock()
	if pw.core.closed {
		return 0, errors.New("write on closed pipe")
	}
	return pw.core.input.Write(data)
}

func (pw *pipeWriter) Close() error {
	pw.core.lock.Lock()
	defer pw.core.lock.Unlock()
	if pw.core.closed {
		return pw.core.failed
	}
	pw.core.closed = true
	transformed, err := pw.core.transform(pw.core.input.Bytes())
	if err != nil {
		pw.core.failed = err
		return err
	}
	_, err = pw.core.output.Write(transformed)
	return err
}

func (pr *pipeReader) Read(data []byte) (int, error) {
	pr.core.lock.Lock()
	defer pr.core.lock.Unlock()
	if !pr.core.closed {
		return 0, errors.New("input buffer not closed")
	}
	if pr.core.failed != nil {
		return 0, pr.core.failed
	}
	return pr.core.output.Read(data)
}

func (pr *pipeReader) Close() error {
	pr.core.lock.Lock()
	defer pr.core.lock.Unlock()
	pr.core.input.Reset()
	pr.core.output.Reset()
	return nil
}
