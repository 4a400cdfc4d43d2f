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

// Package galois implements the GF(2^64) offset arithmetic used by the
// GIFT-COFB feedback function: doubling and tripling an 8-byte offset
// under the feedback polynomial x^64 + x^4 + x^3 + x + 1.
package galois

const feedbackPoly = 0x1b

// Double computes L <- 2*L over GF(2^64) with the COFB feedback
// polynomial: a left shift by one bit, folding the polynomial back in
// whenever the most significant bit was set.
func Double(l []byte) []byte {
	out := make([]byte, 8)
	msb := l[0]&0x80 != 0

	for i := 0; i < 7; i++ {
		out[i] = (l[i] << 1) | (l[i+1] >> 7)
	}
	out[7] = l[7] << 1

	if msb {
		out[7] ^= feedbackPoly
	}

	return out
}

// Triple computes L <- 3*L over GF(2^64), i.e. Double(L) xor L.
func Triple(l []byte) []byte {
	return XorBlocks(Double(l), l)
}

// XorBlocks xors two equal-length byte slices and returns a new
// slice holding the result.
func XorBlocks(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
