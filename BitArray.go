package Go_Utils

import (
	"math/bits"
)

// NewBitArray that holds at least n bits, all cleared.
func NewBitArray(n uint) BitArray {
	return BitArray{bits: make([]uint, (n+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size array of bits. Copies share the same bits.
type BitArray struct {
	bits []uint
}

// Len is the number of bits, a multiple of bits.UintSize.
func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of set bits.
func (u BitArray) Count() (c uint) {
	for _, b := range u.bits {
		c += uint(bits.OnesCount(b))
	}
	return
}
