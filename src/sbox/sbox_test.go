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

package sbox

import "testing"

func TestApplyApplyInvRoundTrip(t *testing.T) {
	s0, s1, s2, s3 := uint32(0x12345678), uint32(0x9abcdef0), uint32(0x0f1e2d3c), uint32(0xaabbccdd)

	// ApplyInv undoes Apply when s0 and s3 are swapped on the way in
	// and out, the way the round functions call it.
	o0, o1, o2, o3 := Apply(s0, s1, s2, s3)
	r3, r1, r2, r0 := ApplyInv(o3, o1, o2, o0)

	if r0 != s0 || r1 != s1 || r2 != s2 || r3 != s3 {
		t.Fatalf("ApplyInv(Apply(s)) = (%#x,%#x,%#x,%#x), want (%#x,%#x,%#x,%#x)",
			r0, r1, r2, r3, s0, s1, s2, s3)
	}
}

// TestApplyIsPermutation checks, at bit position 0 with all other
// positions held at zero, that Apply is a bijection on the 4-bit
// input space: every one of the 16 inputs produces a distinct output.
// Apply's raw output is not compared against the textbook GIFT S-box
// table directly: this shared circuit folds the S-box's bitwise-NOT
// step into the pre-complemented round-key and round-constant words
// it is XORed with instead of spending a seventh operation on it (see
// the comment on rkey[0] in key64.go), so only the full round
// function, keyed and constant-added, reproduces the canonical cipher
// behaviour. That end-to-end behaviour is what the KAT vectors in the
// gift64 package check; the gift128 package has round-trip tests only.
func TestApplyIsPermutation(t *testing.T) {
	seen := make(map[uint32]uint32, 16)

	for nibble := uint32(0); nibble < 16; nibble++ {
		var s0, s1, s2, s3 uint32
		if nibble&1 != 0 {
			s0 = 1
		}
		if nibble&2 != 0 {
			s1 = 1
		}
		if nibble&4 != 0 {
			s2 = 1
		}
		if nibble&8 != 0 {
			s3 = 1
		}

		o0, o1, o2, o3 := Apply(s0, s1, s2, s3)
		got := o0 | o1<<1 | o2<<2 | o3<<3
		if prev, dup := seen[got]; dup {
			t.Fatalf("Apply(%#x) and Apply(%#x) both produced %#x: not a bijection", nibble, prev, got)
		}
		seen[got] = nibble
	}

	if len(seen) != 16 {
		t.Fatalf("Apply covered only %d of 16 outputs", len(seen))
	}
}
