package hive

import (
	"reflect"
	"unsafe"
)

// pool is a type-erased chunked slab for one component type. Storage grows by
// whole chunks of chunkElems slots; chunks are never reallocated or moved, so
// a pointer obtained from ptrAt stays valid for the pool's lifetime.
//
// Chunks are allocated through reflect.MakeSlice with the component's real
// type, so the garbage collector scans pointers held inside components.
type pool struct {
	typ      reflect.Type
	chunks   []unsafe.Pointer
	elemSize uintptr
	size     int // logical size, slots 0..size-1 may be in use
	capacity int // total allocated slots, multiple of chunkElems
}

func newPool(typ reflect.Type) *pool {
	return &pool{
		typ:      typ,
		elemSize: typ.Size(),
	}
}

// ensureCapacity appends chunks until at least n slots are allocated.
func (p *pool) ensureCapacity(n int) {
	for p.capacity < n {
		slice := reflect.MakeSlice(reflect.SliceOf(p.typ), chunkElems, chunkElems)
		p.chunks = append(p.chunks, slice.UnsafePointer())
		p.capacity += chunkElems
	}
}

// ensureSize grows capacity to cover n slots and raises the logical size to
// at least n. Slots are zero-valued until written.
func (p *pool) ensureSize(n int) {
	if n > p.size {
		p.ensureCapacity(n)
		p.size = n
	}
}

// ptrAt returns the address of slot i. The caller must ensure i < capacity.
func (p *pool) ptrAt(i int) unsafe.Pointer {
	return unsafe.Add(p.chunks[i/chunkElems], uintptr(i%chunkElems)*p.elemSize)
}

// zeroAt clears slot i back to the zero value. This is the pool's destroy
// operation: it drops any pointers the component held so the GC can reclaim
// them. The pool does not track per-slot liveness; the owning World's mask
// does.
func (p *pool) zeroAt(i int) {
	if p.elemSize == 0 {
		return
	}
	bytes := unsafe.Slice((*byte)(p.ptrAt(i)), p.elemSize)
	clear(bytes)
}
