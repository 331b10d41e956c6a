package vector

import (
	"testing"
)

// BenchmarkRealisticUsage compares the vector with the built-in slice on
// the workloads a growable array usually sees.
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append from empty
	b.Run("Append/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := &Vector[int]{}
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Append/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Append with reserved capacity
	b.Run("Reserved/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v, _ := New[int](WithCapacity(1000))
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Reserved/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Struct elements built in place
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("Emplace/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := &Vector[record]{}
			for j := 0; j < 100; j++ {
				v.EmplaceBack(func(r *record) error {
					r.ID = int64(j)
					return nil
				})
			}
		}
	})

	b.Run("Emplace/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []record
			for j := 0; j < 100; j++ {
				s = append(s, record{ID: int64(j)})
			}
			_ = s
		}
	})

	// Test 4: Buffer reuse across requests
	b.Run("Reuse/Vector", func(b *testing.B) {
		v := &Vector[int]{}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 256; j++ {
				v.PushBack(j)
			}
			v.Clear()
		}
	})

	b.Run("Reuse/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 256; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})
}

// BenchmarkInsertErase measures middle insertion and erasure with and
// without spare capacity.
func BenchmarkInsertErase(b *testing.B) {
	b.Run("InPlace", func(b *testing.B) {
		v, _ := New[int](WithCapacity(1024))
		for j := 0; j < 512; j++ {
			v.PushBack(j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Insert(256, i)
			v.Erase(256)
		}
	})

	b.Run("Growing", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := &Vector[int]{}
			for j := 0; j < 64; j++ {
				v.Insert(v.Len()/2, j)
			}
		}
	})

	b.Run("FallibleMove", func(b *testing.B) {
		l := newLedger()
		v := &Vector[tracked]{}
		v.Reserve(256)
		for j := 0; j < 128; j++ {
			v.PushBack(tracked{id: j, l: l})
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Insert(64, tracked{id: i, l: l})
			v.Erase(64)
		}
	})
}
