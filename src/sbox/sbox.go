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

// Package sbox implements the GIFT substitution layer in its bitsliced
// form: the 4x32 bit state is treated as 32 parallel applications of a
// single 4-bit S-box, one per bit position, computed with six XOR/AND
// operations instead of a lookup table. The same six-operation S-box
// (and its inverse) is shared unchanged by both GIFT-128 and GIFT-64.
package sbox

// Apply evaluates the GIFT S-box on the four bitsliced state words, one
// 4-bit S-box per bit position across s0..s3, and returns the result.
func Apply(s0, s1, s2, s3 uint32) (uint32, uint32, uint32, uint32) {
	s1 ^= s0 & s2
	s0 ^= s1 & s3
	s2 ^= s0 | s1
	s3 ^= s2
	s1 ^= s3
	s2 ^= s0 & s1
	return s0, s1, s2, s3
}

// ApplyInv evaluates the inverse GIFT S-box. It is not Apply run
// backwards step by step; it is its own six-operation circuit, and it
// only undoes Apply when s0 and s3 are swapped relative to the forward
// call: after o0, o1, o2, o3 := Apply(s0, s1, s2, s3),
// ApplyInv(o3, o1, o2, o0) returns (s3, s1, s2, s0). The call sites in
// gift64.go and gift128.go alternate between identity and
// (s3,s1,s2,s0) order every sub-round, so each inverse call uses the
// other order from the forward call it undoes.
func ApplyInv(s0, s1, s2, s3 uint32) (uint32, uint32, uint32, uint32) {
	s2 ^= s3 & s1
	s1 ^= s0
	s0 ^= s2
	s2 ^= s3 | s1
	s3 ^= s1 & s0
	s1 ^= s3 & s2
	return s0, s1, s2, s3
}
