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

// Package padding implements the one-zero padding GIFT-COFB applies to
// the final, possibly partial, block of associated data or plaintext.
package padding

// OneZeroPad pads data up to a 16-byte block using the COFB
// convention: an empty block pads to 0x80 followed by 15 zero bytes;
// a partial block is copied as-is, followed by 0x80 and zero-filled;
// a full 16-byte block is returned unchanged.
func OneZeroPad(data []byte) []byte {
	if len(data) == 16 {
		out := make([]byte, 16)
		copy(out, data)
		return out
	}

	out := make([]byte, 16)
	copy(out, data)
	out[len(data)] = 0x80
	return out
}
