package stress

import (
	"fmt"
	"math"

	"github.com/pbnjay/memory"
)

// Block is a single contiguous buffer committed to physical pages. It is
// allocated once, filled once, and held until Release; never resized or
// partially freed.
type Block struct {
	buf  []byte
	fill byte
}

// AllocBlock reserves size bytes, checking the request against the machine's
// physical RAM first. A request that cannot be committed returns an error
// instead of letting the kernel overcommit and OOM-kill the process halfway
// through the fill.
func AllocBlock(size uint64, fill byte) (*Block, error) {
	if size == 0 {
		return nil, fmt.Errorf("requested block size is zero")
	}
	if size > math.MaxInt64 {
		return nil, fmt.Errorf("requested %d bytes is not addressable", size)
	}
	if total := memory.TotalMemory(); total > 0 && size > total {
		return nil, fmt.Errorf("requested %d bytes exceeds physical memory of %d bytes", size, total)
	}
	return &Block{buf: make([]byte, size), fill: fill}, nil
}

// Fill writes the fill byte across the whole buffer so every page is
// actually committed, defeating lazy allocation.
func (b *Block) Fill() {
	for i := range b.buf {
		b.buf[i] = b.fill
	}
}

// Verify reports whether every byte still holds the fill value.
func (b *Block) Verify() bool {
	for _, v := range b.buf {
		if v != b.fill {
			return false
		}
	}
	return true
}

// Size returns the buffer length in bytes.
func (b *Block) Size() uint64 {
	return uint64(len(b.buf))
}

// Byte returns the value at offset i.
func (b *Block) Byte(i uint64) byte {
	return b.buf[i]
}

// Release drops the buffer reference. The runtime returns the pages to the
// OS on its own schedule.
func (b *Block) Release() {
	b.buf = nil
}
