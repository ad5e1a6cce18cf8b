package storage

// sizeWriter wraps a writer and tracks the total number of bytes written
type sizeWriter struct {
	size int64
}

// NewSizeWriter creates a new sizeWriter instance
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}

// Write implements io.Writer; it only counts bytes
func (sw *sizeWriter) Write(p []byte) (int, error) {
	n := len(p)
	sw.size += int64(n)
	return n, nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}
