package testdata

// ErrReader is an io.Reader which returns Data on its first read and Err on every read after that.
type ErrReader struct {
	Data []byte
	Err  error
}

func (e *ErrReader) Read(p []byte) (n int, err error) {
	if len(e.Data) > 0 {
		n = copy(p, e.Data)
		e.Data = e.Data[n:]
		return n, nil
	}
	return 0, e.Err
}
