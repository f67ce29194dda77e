package bloom

import (
	"fmt"
	"testing"
)

func BenchmarkNew(b *testing.B) {
	for _, elems := range []uint64{100, 1000, 10000} {
		b.Run(fmt.Sprintf("n=%d", elems), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := New(elems, 0.01); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	elem := []byte{1, 2, 3, 4, 5}

	for name, factory := range hasherFamilies {
		b.Run(name, func(b *testing.B) {
			f, err := New(100, 0.01, WithHasherFactory(factory))
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Insert(elem)
			}
		})
	}
}

func BenchmarkMayContain(b *testing.B) {
	for name, factory := range hasherFamilies {
		b.Run(name, func(b *testing.B) {
			f, err := New(1000, 0.01, WithHasherFactory(factory))
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < 1000; i++ {
				f.InsertString(fmt.Sprintf("key-%d", i))
			}
			probe := []byte("key-500")

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.MayContain(probe)
			}
		})
	}
}
