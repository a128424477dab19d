package hive_test

import (
	"fmt"
	"testing"

	"github.com/hivelib/hive"
)

func sizeName(size int) string {
	if size == 1000000 {
		return "1M"
	}
	return fmt.Sprintf("%dK", size/1000)
}

var benchSizes = []int{1000, 10000, 100000, 1000000}

func BenchmarkNewWorld(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = hive.NewWorld(size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWorldCreate(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := hive.NewWorld(size)
				b.StartTimer()
				for j := 0; j < size; j++ {
					_ = j
					w.Create()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkWorldCreateMany(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := hive.NewWorld(size)
				b.StartTimer()
				w.CreateMany(size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkBuilderNewEntity(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := hive.NewWorld(size)
				builder := hive.NewBuilder[Position](w)
				b.StartTimer()
				for j := 0; j < size; j++ {
					_ = j
					builder.NewEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkBuilderNewEntities(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := hive.NewWorld(size)
				builder := hive.NewBuilder[Position](w)
				b.StartTimer()
				builder.NewEntities(size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkBuilder2NewEntities(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := hive.NewWorld(size)
				builder2 := hive.NewBuilder2[Position, Velocity](w)
				b.StartTimer()
				builder2.NewEntities(size)
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkGet(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder := hive.NewBuilder[Position](w)
			ents := builder.NewEntities(size)
			for i := 0; i < b.N; i++ {
				for j := 0; j < size; j++ {
					hive.Get[Position](w, ents[j])
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkSetExisting(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder := hive.NewBuilder[Position](w)
			ents := builder.NewEntities(size)
			val := Position{1, 2}
			for i := 0; i < b.N; i++ {
				for j := 0; j < size; j++ {
					hive.Set(w, ents[j], val)
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkAddRemove(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder := hive.NewBuilder[Position](w)
			ents := builder.NewEntities(size)
			val := Velocity{3, 4}
			for i := 0; i < b.N; i++ {
				for j := 0; j < size; j++ {
					hive.Add(w, ents[j], val)
				}
				for j := 0; j < size; j++ {
					hive.Remove[Velocity](w, ents[j])
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkDestroy(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				w := hive.NewWorld(size)
				builder := hive.NewBuilder[Position](w)
				ents := builder.NewEntities(size)
				b.StartTimer()
				for j := 0; j < size; j++ {
					w.Destroy(ents[j])
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkFilterIterate(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder := hive.NewBuilder[Position](w)
			builder.NewEntities(size)
			filter := hive.NewFilter[Position](w)
			for i := 0; i < b.N; i++ {
				filter.Reset()
				for filter.Next() {
					_ = filter.Get()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkFilter2Iterate(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder2 := hive.NewBuilder2[Position, Velocity](w)
			builder2.NewEntities(size)
			filter2 := hive.NewFilter2[Position, Velocity](w)
			for i := 0; i < b.N; i++ {
				filter2.Reset()
				for filter2.Next() {
					_, _ = filter2.Get()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkFilter3Iterate(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder3 := hive.NewBuilder3[Position, Velocity, Health](w)
			builder3.NewEntities(size)
			filter3 := hive.NewFilter3[Position, Velocity, Health](w)
			for i := 0; i < b.N; i++ {
				filter3.Reset()
				for filter3.Next() {
					_, _, _ = filter3.Get()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkFilterIterateFragmented(b *testing.B) {
	hive.ResetRegistry()
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			w := hive.NewWorld(size)
			builder2 := hive.NewBuilder2[Position, Velocity](w)
			for j := 0; j < size; j++ {
				e, _, _ := builder2.NewEntity()
				if j%2 == 0 {
					hive.Remove[Velocity](w, e)
				}
			}
			filter2 := hive.NewFilter2[Position, Velocity](w)
			for i := 0; i < b.N; i++ {
				filter2.Reset()
				for filter2.Next() {
					_, _ = filter2.Get()
				}
			}
			b.ReportAllocs()
		})
	}
}
