package buffer

// Buffer is a giant slice of data you write into it. Serves primarily the purpose of a quasi-arena
// by hosting non-interrelated byte sequences in a single place. Allows writing byte sequences streamingly.
// Its maximal size is a hard limit. Segments finished earlier are never touched again, so strings
// pointing into them stay valid for as long as the buffer lives.
type Buffer struct {
	memory  []byte
	begin   int
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, min(initialSize, maxSize)),
		maxSize: maxSize,
	}
}

// AppendUpTo writes as much of the data as the limit allows and returns how many bytes were
// written.
func (b *Buffer) AppendUpTo(elements []byte) (n int) {
	n = min(len(elements), b.Free())
	b.memory = append(b.memory, elements[:n]...)
	return n
}

// Free returns how many bytes can still be written.
func (b *Buffer) Free() int {
	return b.maxSize - len(b.memory)
}

// SegmentLength returns a number of bytes, taken by current segment, calculated as a difference
// between the beginning of the current segment and the current pointer.
func (b *Buffer) SegmentLength() int {
	return len(b.memory) - b.begin
}

// Finish completes current segment, returning its value.
func (b *Buffer) Finish() []byte {
	segment := b.memory[b.begin:]
	b.begin = len(b.memory)

	return segment
}
