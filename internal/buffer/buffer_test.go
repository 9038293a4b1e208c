package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pushSegment(t *testing.T, buff Buffer, text string) Buffer {
	require.Equal(t, len(text), buff.AppendUpTo([]byte(text)))
	segment := buff.Finish()
	require.Equal(t, text, string(segment))
	return buff
}

func BenchmarkBuffer(b *testing.B) {
	smallString := []byte(strings.Repeat("a", 1023))

	b.ReportAllocs()
	b.SetBytes(int64(len(smallString)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buff := New(1024, 4096)
		_ = buff.AppendUpTo(smallString)
		_ = buff.Finish()
	}
}

func TestBuffer(t *testing.T) {
	t.Run("no overflow", func(t *testing.T) {
		buff := New(10, 20)
		buff = pushSegment(t, buff, "Hello")
		buff = pushSegment(t, buff, "Here")
		require.Equal(t, 11, buff.Free())
	})

	t.Run("with overflow", func(t *testing.T) {
		buff := New(10, 20)
		// "Hello, World!" is 13 characters length, so it will force the Buffer
		// to grow an underlying slice
		buff = pushSegment(t, buff, "Hello, ")
		buff = pushSegment(t, buff, "World!")
	})

	t.Run("initial size never exceeds the limit", func(t *testing.T) {
		buff := New(64, 8)
		require.Equal(t, 8, buff.Free())
		require.Equal(t, 8, cap(buff.memory))
	})

	t.Run("append up to the limit", func(t *testing.T) {
		buff := New(4, 8)
		require.Equal(t, 5, buff.AppendUpTo([]byte("Hello")))
		require.Equal(t, 3, buff.AppendUpTo([]byte(", World!")))
		require.Zero(t, buff.Free())
		require.Zero(t, buff.AppendUpTo([]byte("more")))
		require.Equal(t, "Hello, W", string(buff.Finish()))
	})

	t.Run("segment length", func(t *testing.T) {
		buff := New(10, 20)
		buff = pushSegment(t, buff, "Lorem ")
		require.Zero(t, buff.SegmentLength())
		buff.AppendUpTo([]byte("Hello, "))
		buff.AppendUpTo([]byte("World!"))
		require.Equal(t, 13, buff.SegmentLength())
		require.Equal(t, "Hello, World!", string(buff.Finish()))
		require.Zero(t, buff.SegmentLength())
	})

	t.Run("finished segments stay intact", func(t *testing.T) {
		buff := New(2, 64)
		buff.AppendUpTo([]byte("first"))
		segment := buff.Finish()
		buff = pushSegment(t, buff, strings.Repeat("x", 40))
		require.Equal(t, "first", string(segment))
	})
}
