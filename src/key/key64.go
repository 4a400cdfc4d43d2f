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

package key

import (
	"errors"

	"github.com/aadomn/gift/src/bits"
	"github.com/aadomn/gift/src/consts"
)

// RoundKeys64 holds the 56 fixsliced round-key words for GIFT-64.
type RoundKeys64 [consts.GIFT64_RKEYWORDS]uint32

// rearrangeKeyword0_1 packs two key bytes into the fixsliced nibble
// layout used for key words W6/W7 and W4/W5.
func rearrangeKeyword0_1(x, y byte) uint32 {
	return (uint32(y&0xf0) << 20) | (uint32(x&0x0f) << 16) |
		(uint32(x&0xf0) << 4) | uint32(y&0x0f)
}

// rearrangeKeyword2_3 packs two key bytes into the fixsliced nibble
// layout used for key words W2/W3 and W0/W1.
func rearrangeKeyword2_3(x, y byte) uint32 {
	return (uint32(x&0xf0) << 20) | (uint32(x&0x0f) << 16) |
		(uint32(y&0xf0) << 4) | uint32(y&0x0f)
}

// transposeU32 bit-transposes a 32 bit word into the fixsliced key
// representation: it scatters each group of 4 bits to every 7th
// position so that same-row key bits line up with the cipher state.
func transposeU32(x uint32) uint32 {
	tmp := x & 0x88442211
	tmp |= (x & 0x44221100) >> 7
	tmp |= (x & 0x22110000) >> 14
	tmp |= (x & 0x11000000) >> 21
	tmp |= (x & 0x00884422) << 7
	tmp |= (x & 0x00008844) << 14
	tmp |= (x & 0x00000088) << 21
	return tmp
}

// rearrangeKey loads a 16-byte key into the 8 fixsliced key words
// expected by the GIFT-64 round function.
func rearrangeKey(rkey *[8]uint32, key []byte) {
	// key words W6 and W7
	rkey[0] = rearrangeKeyword0_1(key[14], key[15])
	rkey[1] = rearrangeKeyword0_1(key[12], key[13])
	rkey[0] = transposeU32(rkey[0])
	rkey[1] = transposeU32(rkey[1])
	rkey[0] |= rkey[0] << 4 // each key word is interleaved with itself
	rkey[1] |= rkey[1] << 4
	rkey[0] ^= 0xffffffff // saves one operation in the sbox computation
	// key words W4 and W5
	rkey[2] = rearrangeKeyword0_1(key[10], key[11])
	rkey[3] = rearrangeKeyword0_1(key[8], key[9])
	rkey[2] |= rkey[2] << 4
	rkey[3] |= rkey[3] << 4
	rkey[2] ^= 0xffffffff
	rkey[2] = bits.Permute(rkey[2], 0x22222222, 2)
	rkey[3] = bits.Permute(rkey[3], 0x22222222, 2)
	// key words W2 and W3
	rkey[4] = rearrangeKeyword2_3(key[6], key[7])
	rkey[5] = rearrangeKeyword2_3(key[4], key[5])
	rkey[4] = transposeU32(rkey[4])
	rkey[5] = transposeU32(rkey[5])
	rkey[4] = bits.Permute(rkey[4], 0x00000f00, 16)
	rkey[5] = bits.Permute(rkey[5], 0x00000f00, 16)
	rkey[4] |= rkey[4] << 4
	rkey[5] |= rkey[5] << 4
	rkey[4] ^= 0xffffffff
	// key words W0 and W1
	rkey[6] = rearrangeKeyword2_3(key[2], key[3])
	rkey[7] = rearrangeKeyword2_3(key[0], key[1])
	rkey[6] |= rkey[6] << 4
	rkey[7] |= rkey[7] << 4
	rkey[6] ^= 0xffffffff
}

// rearrangeTwoKeys is rearrangeKey applied to two keys at once, nibble
// interleaving the pair so that two independently-keyed GIFT-64 blocks
// can be evaluated in parallel through the same fixsliced state.
func rearrangeTwoKeys(rkey *[8]uint32, key0, key1 []byte) {
	rkey[0] = rearrangeKeyword0_1(key0[14], key0[15])
	rkey[0] |= rearrangeKeyword0_1(key1[14], key1[15]) << 4
	rkey[1] = rearrangeKeyword0_1(key0[12], key0[13])
	rkey[1] |= rearrangeKeyword0_1(key1[12], key1[13]) << 4
	rkey[0] = transposeU32(rkey[0])
	rkey[1] = transposeU32(rkey[1])
	rkey[0] ^= 0xffffffff
	rkey[2] = rearrangeKeyword0_1(key0[10], key0[11])
	rkey[2] |= rearrangeKeyword0_1(key1[10], key1[11]) << 4
	rkey[3] = rearrangeKeyword0_1(key0[8], key0[9])
	rkey[3] |= rearrangeKeyword0_1(key1[8], key1[9]) << 4
	rkey[2] ^= 0xffffffff
	rkey[2] = bits.Permute(rkey[2], 0x22222222, 2)
	rkey[3] = bits.Permute(rkey[3], 0x22222222, 2)
	rkey[4] = rearrangeKeyword2_3(key0[6], key0[7])
	rkey[4] |= rearrangeKeyword2_3(key1[6], key1[7]) << 4
	rkey[5] = rearrangeKeyword2_3(key0[4], key0[5])
	rkey[5] |= rearrangeKeyword2_3(key1[4], key1[5]) << 4
	rkey[4] = transposeU32(rkey[4])
	rkey[5] = transposeU32(rkey[5])
	rkey[4] = bits.Permute(rkey[4], 0x0000ff00, 16)
	rkey[5] = bits.Permute(rkey[5], 0x0000ff00, 16)
	rkey[4] ^= 0xffffffff
	rkey[6] = rearrangeKeyword2_3(key0[2], key0[3])
	rkey[6] |= rearrangeKeyword2_3(key1[2], key1[3]) << 4
	rkey[7] = rearrangeKeyword2_3(key0[0], key0[1])
	rkey[7] |= rearrangeKeyword2_3(key1[0], key1[1]) << 4
	rkey[6] ^= 0xffffffff
}

// keyUpdate64 derives the next 8 fixsliced round-key words from the
// previous 8, advancing the GIFT-64 key schedule by one quadruple
// round.
func keyUpdate64(next, prev *[8]uint32) {
	next[0] = bits.NibbleRor1(prev[0])
	next[1] = bits.NibbleRor3(prev[1]) & 0x0000ffff
	next[1] |= prev[1] & 0xffff0000
	next[1] = bits.Ror32(next[1], 16)

	next[2] = bits.Ror32(prev[2], 8)
	tmp := bits.NibbleRor2(prev[3])
	next[3] = tmp & 0x99999999
	next[3] |= bits.Ror32(tmp&0x66666666, 24)

	next[4] = bits.NibbleRor3(prev[4])
	tmp = bits.Ror32(prev[5], 16)
	next[5] = bits.NibbleRor1(tmp) & 0x00ffff00
	next[5] |= tmp & 0xff0000ff

	next[6] = bits.Ror32(prev[6], 24)
	tmp = bits.NibbleRor2(prev[7])
	next[7] = tmp & 0x33333333
	next[7] |= bits.Ror32(tmp&0xcccccccc, 8)
}

// NewRoundKeys64 precomputes the 56-word fixsliced round-key sequence
// for a single 16-byte GIFT-64 key.
func NewRoundKeys64(key []byte) (*RoundKeys64, error) {
	if len(key) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("invalid key size")
	}

	var rk RoundKeys64
	var group [8]uint32
	rearrangeKey(&group, key)
	copy(rk[0:8], group[:])

	for i := 0; i < 48; i += 8 {
		var prev, next [8]uint32
		copy(prev[:], rk[i:i+8])
		keyUpdate64(&next, &prev)
		copy(rk[i+8:i+16], next[:])
	}

	return &rk, nil
}

// NewTwoKeyRoundKeys64 precomputes the 56-word fixsliced round-key
// sequence for two independent 16-byte keys, so that two GIFT-64
// blocks keyed differently can be evaluated together in the same
// fixsliced state (e.g. constructions such as LOTUS-AEAD that encrypt
// a pair of blocks under distinct keys).
func NewTwoKeyRoundKeys64(key0, key1 []byte) (*RoundKeys64, error) {
	if len(key0) != consts.GIFT128_KEY_SIZE || len(key1) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("invalid key size")
	}

	var rk RoundKeys64
	var group [8]uint32
	rearrangeTwoKeys(&group, key0, key1)
	copy(rk[0:8], group[:])

	for i := 0; i < 48; i += 8 {
		var prev, next [8]uint32
		copy(prev[:], rk[i:i+8])
		keyUpdate64(&next, &prev)
		copy(rk[i+8:i+16], next[:])
	}

	return &rk, nil
}
