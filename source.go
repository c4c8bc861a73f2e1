package formulaorder

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source supplies the declaration text for one run.
type Source interface {
	// Name identifies the input in diagnostics; "" for stdin.
	Name() string
	// Open returns the input. The caller closes it.
	Open() (io.ReadCloser, error)
}

type fileSource struct{ path string }

// File returns a Source that reads path.
func File(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return s.path }

func (s fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

type readerSource struct {
	name string
	r    io.Reader
}

// Reader returns a Source over r. Stdin is Reader("", os.Stdin).
func Reader(name string, r io.Reader) Source { return readerSource{name: name, r: r} }

func (s readerSource) Name() string { return s.name }

func (s readerSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// Bytes returns a Source over an in-memory buffer.
func Bytes(name string, data []byte) Source {
	return readerSource{name: name, r: bytes.NewReader(data)}
}

// ReadAll reads the whole of src.
func ReadAll(src Source) ([]byte, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		if src.Name() != "" {
			return nil, errors.Wrapf(err, "reading %s", src.Name())
		}
		return nil, errors.Wrap(err, "reading input")
	}
	return data, nil
}

// OrderSource reads src and orders it.
func OrderSource(src Source, opts ...Option) (*Result, error) {
	data, err := ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Order(data, opts...)
}

// CheckSource reads src and checks it, recording its name in every
// diagnostic.
func CheckSource(src Source, opts ...Option) (Report, error) {
	data, err := ReadAll(src)
	if err != nil {
		return Report{}, err
	}
	return Check(data, append(opts, WithSourceName(src.Name()))...), nil
}
