package buffer

// Buffer accumulates the bytes of a single exchange. The bytes already consumed by the
// parser stay in the memory until Clear, so the total size of the exchange is bounded
// by maxSize no matter how it's consumed.
type Buffer struct {
	memory  []byte
	begin   int
	maxSize int
}

func New(initialSize, maxSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data, checking whether the new amount of elements (bytes) doesn't exceed the
// limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// SegmentLength returns a number of pending (not yet consumed) bytes.
func (b *Buffer) SegmentLength() int {
	return len(b.memory) - b.begin
}

// Len returns the number of bytes written since the last Clear, consumed ones included.
func (b *Buffer) Len() int {
	return len(b.memory)
}

// Free returns how many more bytes may be appended before reaching the limit.
func (b *Buffer) Free() int {
	return b.maxSize - len(b.memory)
}

// Preview returns pending bytes without consuming them.
func (b *Buffer) Preview() []byte {
	return b.memory[b.begin:]
}

// Consume marks the first n pending bytes as processed.
func (b *Buffer) Consume(n int) {
	if seglen := b.SegmentLength(); n > seglen {
		n = seglen
	}

	b.begin += n
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}
