package ring_test

import (
	"testing"

	"github.com/arloliu/bfsdl/internal/ring"
)

func BenchmarkPushSmallChunks(b *testing.B) {
	w, _ := ring.New(32)
	data := []byte("abcdefgh")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Push(data)
	}
}

func BenchmarkPushOverCapacity(b *testing.B) {
	w, _ := ring.New(32)
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Push(data)
	}
}
