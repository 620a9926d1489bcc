package engine

// Buffer is the shared display buffer: the latest record, last writer wins
// Owned by the main loop goroutine; the draw callback reads it during the draw step
type Buffer struct {
	text string
	seq  uint64
}

// NewBuffer returns an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Set replaces the text and advances the sequence number
func (b *Buffer) Set(text string) {
	b.text = text
	b.seq++
}

// Text returns the latest record, empty before the first one
func (b *Buffer) Text() string {
	return b.text
}

// Seq counts Set calls; readers compare it to detect new content
func (b *Buffer) Seq() uint64 {
	return b.seq
}
