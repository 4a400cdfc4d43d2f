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

// Package consts defines constant values shared by the GIFT-128, GIFT-64
// and GIFT-COFB implementations.
package consts

const (
	// Size of the GIFT-128 block and key, in bytes.
	GIFT128_BLOCK_SIZE = 16
	GIFT128_KEY_SIZE   = 16

	// Number of GIFT-128 rounds and the number of 32-bit round-key
	// words its fixsliced key schedule produces.
	GIFT128_ROUNDS    = 40
	GIFT128_RKEYWORDS = 80

	// Size of the GIFT-64 block, in bytes. The key is shared with
	// GIFT-128 (128 bit).
	GIFT64_BLOCK_SIZE = 8

	// Number of GIFT-64 rounds and the number of 32-bit round-key
	// words its fixsliced key schedule produces.
	GIFT64_ROUNDS    = 28
	GIFT64_RKEYWORDS = 56

	// Size of the COFB nonce and authentication tag, in bytes. Both
	// are exactly one GIFT-128 block.
	COFB_NONCE_SIZE = GIFT128_BLOCK_SIZE
	COFB_TAG_SIZE   = GIFT128_BLOCK_SIZE

	// Size of the COFB offset, the upper half of the feedback block.
	COFB_OFFSET_SIZE = GIFT128_BLOCK_SIZE / 2
)
