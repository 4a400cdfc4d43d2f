// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package bits implements the constant-time bit-manipulation primitives
// shared by the fixsliced GIFT-128 and GIFT-64 round functions: word
// rotations, nibble rotations, the swap-move bit exchange and
// big-endian word load/store. None of these branch or index memory on
// their input, so they carry the constant-time property up into every
// caller that composes them.
package bits

// Ror32 rotates x right by n bits within a 32 bit word.
func Ror32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// NibbleRor1 rotates every 4-bit nibble of x right by 1 bit.
func NibbleRor1(x uint32) uint32 {
	return ((x >> 1) & 0x77777777) | ((x & 0x11111111) << 3)
}

// NibbleRor2 rotates every 4-bit nibble of x right by 2 bits.
func NibbleRor2(x uint32) uint32 {
	return ((x >> 2) & 0x33333333) | ((x & 0x33333333) << 2)
}

// NibbleRor3 rotates every 4-bit nibble of x right by 3 bits.
func NibbleRor3(x uint32) uint32 {
	return ((x >> 3) & 0x11111111) | ((x & 0x77777777) << 1)
}

// SwapMove exchanges the bits selected by mask between a and b after
// shifting b's selection left by n, returning the updated pair. It is
// its own inverse: calling SwapMove twice with the same mask and shift
// restores the original values. a and b must be distinct words: Go
// evaluates both return values from the same pre-update a and b, so
// assigning the result back onto a single variable (x, x = SwapMove(x,
// x, ...)) silently drops half of the update. Use Permute for the
// single-word case.
func SwapMove(a, b uint32, mask uint32, n uint) (uint32, uint32) {
	t := (b ^ (a >> n)) & mask
	b ^= t
	a ^= t << n
	return a, b
}

// Permute exchanges the bits of x selected by mask with the bits n
// positions above them, within the single word. Unlike SwapMove (which
// exchanges bits between two distinct words), this is the single-word
// in-place form of the same primitive: the two half-updates are folded
// together so calling it twice with the same mask and shift restores x.
func Permute(x uint32, mask uint32, n uint) uint32 {
	t := (x ^ (x >> n)) & mask
	return x ^ t ^ (t << n)
}

// BigEndian loads a 32-bit word from the first 4 bytes of b in
// big-endian order.
func BigEndian(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PutBigEndian stores x into the first 4 bytes of b in big-endian order.
func PutBigEndian(b []byte, x uint32) {
	b[0] = byte(x >> 24)
	b[1] = byte(x >> 16)
	b[2] = byte(x >> 8)
	b[3] = byte(x)
}
