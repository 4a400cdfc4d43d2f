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

package bits

import "testing"

func TestRor32RoundTrip(t *testing.T) {
	x := uint32(0x12345678)
	for n := uint(0); n < 32; n++ {
		got := Ror32(Ror32(x, n), 32-n)
		if got != x {
			t.Errorf("Ror32 round-trip failed for n=%d: got %#x want %#x", n, got, x)
		}
	}
}

func TestNibbleRorRoundTrip(t *testing.T) {
	x := uint32(0xdeadbeef)
	if got := NibbleRor1(NibbleRor3(x)); got != x {
		t.Errorf("NibbleRor1(NibbleRor3(x)) = %#x, want %#x", got, x)
	}
	if got := NibbleRor2(NibbleRor2(x)); got != x {
		t.Errorf("NibbleRor2(NibbleRor2(x)) = %#x, want %#x", got, x)
	}
}

func TestSwapMoveSelfInverse(t *testing.T) {
	a, b := uint32(0x0f0f0f0f), uint32(0xf0f0f0f0)
	na, nb := SwapMove(a, b, 0x00ff00ff, 8)
	ra, rb := SwapMove(na, nb, 0x00ff00ff, 8)
	if ra != a || rb != b {
		t.Errorf("SwapMove not self-inverse: got (%#x, %#x), want (%#x, %#x)", ra, rb, a, b)
	}
}

func TestBigEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	want := uint32(0x01020304)
	PutBigEndian(buf, want)
	if got := BigEndian(buf); got != want {
		t.Errorf("BigEndian(PutBigEndian(x)) = %#x, want %#x", got, want)
	}
	if buf[0] != 0x01 || buf[3] != 0x04 {
		t.Errorf("PutBigEndian wrote %v, want big-endian 01 02 03 04", buf)
	}
}
