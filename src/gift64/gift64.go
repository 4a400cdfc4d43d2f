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

// Package gift64 implements the GIFT-64 block cipher in its fixsliced
// representation: 28 rounds fused into 7 quadruple rounds, each
// consuming 8 round-key words and 4 round-constant words. Two
// independent 64-bit blocks are packed into a single 4x32-bit state so
// that every round operates on both blocks at once.
package gift64

import (
	"errors"

	"github.com/aadomn/gift/src/bits"
	"github.com/aadomn/gift/src/consts"
	"github.com/aadomn/gift/src/key"
	"github.com/aadomn/gift/src/sbox"
)

// roundConstants holds the 7 groups of 4 round constants consumed by
// the 7 quadruple rounds, pre-spread to the bit positions the
// fixsliced round function xors them into.
var roundConstants = [consts.GIFT64_ROUNDS]uint32{
	0x22000011, 0x00002299, 0x11118811, 0x880000ff,
	0x33111199, 0x990022ee, 0x22119933, 0x880033bb,
	0x22119999, 0x880022ff, 0x11119922, 0x880033cc,
	0x33008899, 0x99002299, 0x33118811, 0x880000ee,
	0x33110099, 0x990022aa, 0x22118833, 0x880022bb,
	0x22111188, 0x88002266, 0x00009922, 0x88003300,
	0x22008811, 0x00002288, 0x00118811, 0x880000bb,
}

// State holds the fixsliced GIFT-64 state: two interleaved 64-bit
// blocks packed as 4 words of 32 bits each.
type State [4]uint32

// Packing loads two 8-byte blocks into the fixsliced state.
func Packing(s *State, block0, block1 []byte) {
	s[0] = bits.BigEndian(block0[4:8])
	s[1] = bits.BigEndian(block1[4:8])
	s[2] = bits.BigEndian(block0[0:4])
	s[3] = bits.BigEndian(block1[0:4])

	s[0] = bits.Permute(s[0], 0x0a0a0a0a, 3)
	s[0] = bits.Permute(s[0], 0x00cc00cc, 6)
	s[0] = bits.Permute(s[0], 0x0000ff00, 8)
	s[1] = bits.Permute(s[1], 0x0a0a0a0a, 3)
	s[1] = bits.Permute(s[1], 0x00cc00cc, 6)
	s[1] = bits.Permute(s[1], 0x0000ff00, 8)
	s[2] = bits.Permute(s[2], 0x0a0a0a0a, 3)
	s[2] = bits.Permute(s[2], 0x00cc00cc, 6)
	s[2] = bits.Permute(s[2], 0x0000ff00, 8)
	s[3] = bits.Permute(s[3], 0x00cc00cc, 6)
	s[3] = bits.Permute(s[3], 0x0a0a0a0a, 3)
	s[3] = bits.Permute(s[3], 0x0000ff00, 8)
	s[0], s[1] = bits.SwapMove(s[0], s[1], 0x0f0f0f0f, 4)
	s[2], s[3] = bits.SwapMove(s[2], s[3], 0x0f0f0f0f, 4)
	s[0], s[2] = bits.SwapMove(s[0], s[2], 0x0000ffff, 16)
	s[1], s[3] = bits.SwapMove(s[1], s[3], 0x0000ffff, 16)
}

// Unpacking stores the fixsliced state back into two 8-byte blocks,
// undoing Packing.
func Unpacking(s *State, block0, block1 []byte) {
	tmp := *s

	tmp[0], tmp[2] = bits.SwapMove(tmp[0], tmp[2], 0x0000ffff, 16)
	tmp[1], tmp[3] = bits.SwapMove(tmp[1], tmp[3], 0x0000ffff, 16)
	tmp[0], tmp[1] = bits.SwapMove(tmp[0], tmp[1], 0x0f0f0f0f, 4)
	tmp[2], tmp[3] = bits.SwapMove(tmp[2], tmp[3], 0x0f0f0f0f, 4)
	tmp[0] = bits.Permute(tmp[0], 0x0000ff00, 8)
	tmp[1] = bits.Permute(tmp[1], 0x0000ff00, 8)
	tmp[2] = bits.Permute(tmp[2], 0x0000ff00, 8)
	tmp[3] = bits.Permute(tmp[3], 0x0000ff00, 8)
	tmp[0] = bits.Permute(tmp[0], 0x00cc00cc, 6)
	tmp[1] = bits.Permute(tmp[1], 0x00cc00cc, 6)
	tmp[2] = bits.Permute(tmp[2], 0x00cc00cc, 6)
	tmp[3] = bits.Permute(tmp[3], 0x00cc00cc, 6)
	tmp[0] = bits.Permute(tmp[0], 0x0a0a0a0a, 3)
	tmp[1] = bits.Permute(tmp[1], 0x0a0a0a0a, 3)
	tmp[2] = bits.Permute(tmp[2], 0x0a0a0a0a, 3)
	tmp[3] = bits.Permute(tmp[3], 0x0a0a0a0a, 3)

	bits.PutBigEndian(block0[4:8], tmp[0])
	bits.PutBigEndian(block1[4:8], tmp[1])
	bits.PutBigEndian(block0[0:4], tmp[2])
	bits.PutBigEndian(block1[0:4], tmp[3])
}

// PackingInterleave loads two 8-byte blocks into the fixsliced state,
// assuming the input is already in row-wise bitsliced form: unlike
// Packing, it only nibble-interleaves the two blocks instead of also
// bit-permuting each one internally. This is the entry point for the
// "b" (giftb64) variant GIFT-COFB runs its GIFT-128 evaluations
// through, here used for its GIFT-64-sized sibling.
func PackingInterleave(s *State, block0, block1 []byte) {
	s[0] = bits.BigEndian(block0[4:8])
	s[1] = bits.BigEndian(block1[4:8])
	s[2] = bits.BigEndian(block0[0:4])
	s[3] = bits.BigEndian(block1[0:4])

	s[0], s[1] = bits.SwapMove(s[0], s[1], 0x00000f0f, 4)
	s[2], s[3] = bits.SwapMove(s[2], s[3], 0x00000f0f, 4)
	s[0], s[1] = bits.SwapMove(s[0], s[1], 0x0000ffff, 16)
	s[2], s[3] = bits.SwapMove(s[2], s[3], 0x0000ffff, 16)
	s[0] = bits.Permute(s[0], 0x0000ff00, 8)
	s[1] = bits.Permute(s[1], 0x0000ff00, 8)
	s[2] = bits.Permute(s[2], 0x0000ff00, 8)
	s[3] = bits.Permute(s[3], 0x0000ff00, 8)
}

// UnpackingInterleave stores the fixsliced state back into two 8-byte
// row-wise bitsliced blocks, undoing PackingInterleave.
func UnpackingInterleave(s *State, block0, block1 []byte) {
	tmp := *s

	tmp[0] = bits.Permute(tmp[0], 0x0000ff00, 8)
	tmp[1] = bits.Permute(tmp[1], 0x0000ff00, 8)
	tmp[2] = bits.Permute(tmp[2], 0x0000ff00, 8)
	tmp[3] = bits.Permute(tmp[3], 0x0000ff00, 8)
	tmp[0], tmp[1] = bits.SwapMove(tmp[0], tmp[1], 0x0000ffff, 16)
	tmp[2], tmp[3] = bits.SwapMove(tmp[2], tmp[3], 0x0000ffff, 16)
	tmp[0], tmp[1] = bits.SwapMove(tmp[0], tmp[1], 0x00000f0f, 4)
	tmp[2], tmp[3] = bits.SwapMove(tmp[2], tmp[3], 0x00000f0f, 4)

	bits.PutBigEndian(block0[4:8], tmp[0])
	bits.PutBigEndian(block1[4:8], tmp[1])
	bits.PutBigEndian(block0[0:4], tmp[2])
	bits.PutBigEndian(block1[0:4], tmp[3])
}

// quadrupleRound fuses 4 GIFT-64 rounds into one pass over the state,
// consuming 8 round-key words and 4 round-constant words.
func quadrupleRound(s *State, rk []uint32, rc []uint32) {
	s[0], s[1], s[2], s[3] = sbox.Apply(s[0], s[1], s[2], s[3])
	s[1] = bits.NibbleRor1(s[1])
	s[2] = bits.NibbleRor2(s[2])
	s[0] = bits.NibbleRor3(s[0])
	s[3] ^= rk[0]
	s[1] ^= rk[1]
	s[0] ^= rc[0]

	s[3], s[1], s[2], s[0] = sbox.Apply(s[3], s[1], s[2], s[0])
	s[1] = bits.Ror32(s[1], 8)
	s[2] = bits.Ror32(s[2], 16)
	s[3] = bits.Ror32(s[3], 24)
	s[0] ^= rk[2]
	s[1] ^= rk[3]
	s[3] ^= rc[1]

	s[0], s[1], s[2], s[3] = sbox.Apply(s[0], s[1], s[2], s[3])
	s[1] = bits.NibbleRor3(s[1])
	s[2] = bits.NibbleRor2(s[2])
	s[0] = bits.NibbleRor1(s[0])
	s[3] ^= rk[4]
	s[1] ^= rk[5]
	s[0] ^= rc[2]

	s[3], s[1], s[2], s[0] = sbox.Apply(s[3], s[1], s[2], s[0])
	s[1] = bits.Ror32(s[1], 24)
	s[2] = bits.Ror32(s[2], 16)
	s[3] = bits.Ror32(s[3], 8)
	s[0] ^= rk[6]
	s[1] ^= rk[7]
	s[3] ^= rc[3]
}

// invQuadrupleRound undoes quadrupleRound, run with the same round-key
// and round-constant words in the same order.
func invQuadrupleRound(s *State, rk []uint32, rc []uint32) {
	s[0] ^= rk[6]
	s[1] ^= rk[7]
	s[3] ^= rc[3]
	s[1] = bits.Ror32(s[1], 8)
	s[2] = bits.Ror32(s[2], 16)
	s[3] = bits.Ror32(s[3], 24)
	s[0], s[1], s[2], s[3] = sbox.ApplyInv(s[0], s[1], s[2], s[3])

	s[3] ^= rk[4]
	s[1] ^= rk[5]
	s[0] ^= rc[2]
	s[1] = bits.NibbleRor1(s[1])
	s[2] = bits.NibbleRor2(s[2])
	s[0] = bits.NibbleRor3(s[0])
	s[3], s[1], s[2], s[0] = sbox.ApplyInv(s[3], s[1], s[2], s[0])

	s[0] ^= rk[2]
	s[1] ^= rk[3]
	s[3] ^= rc[1]
	s[1] = bits.Ror32(s[1], 24)
	s[2] = bits.Ror32(s[2], 16)
	s[3] = bits.Ror32(s[3], 8)
	s[0], s[1], s[2], s[3] = sbox.ApplyInv(s[0], s[1], s[2], s[3])

	s[3] ^= rk[0]
	s[1] ^= rk[1]
	s[0] ^= rc[0]
	s[1] = bits.NibbleRor3(s[1])
	s[2] = bits.NibbleRor2(s[2])
	s[0] = bits.NibbleRor1(s[0])
	s[3], s[1], s[2], s[0] = sbox.ApplyInv(s[3], s[1], s[2], s[0])
}

// EncryptBlocks encrypts two 8-byte blocks in place under rk, one
// GIFT-64 evaluation fused across both.
func EncryptBlocks(rk *key.RoundKeys64, block0, block1 []byte) error {
	if len(block0) != consts.GIFT64_BLOCK_SIZE || len(block1) != consts.GIFT64_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-64 block size")
	}

	var s State
	Packing(&s, block0, block1)
	for round := 0; round < consts.GIFT64_ROUNDS; round += 4 {
		quadrupleRound(&s, rk[round*2:round*2+8], roundConstants[round:round+4])
	}
	Unpacking(&s, block0, block1)
	return nil
}

// DecryptBlocks decrypts two 8-byte blocks in place under rk, undoing
// EncryptBlocks.
func DecryptBlocks(rk *key.RoundKeys64, block0, block1 []byte) error {
	if len(block0) != consts.GIFT64_BLOCK_SIZE || len(block1) != consts.GIFT64_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-64 block size")
	}

	var s State
	Packing(&s, block0, block1)
	for round := consts.GIFT64_ROUNDS - 4; round >= 0; round -= 4 {
		invQuadrupleRound(&s, rk[round*2:round*2+8], roundConstants[round:round+4])
	}
	Unpacking(&s, block0, block1)
	return nil
}

// EncryptBlocksB encrypts two 8-byte blocks in place under rk, the "b"
// (giftb64) variant that expects block0/block1 already in row-wise
// bitsliced form and leaves the result in that same form.
func EncryptBlocksB(rk *key.RoundKeys64, block0, block1 []byte) error {
	if len(block0) != consts.GIFT64_BLOCK_SIZE || len(block1) != consts.GIFT64_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-64 block size")
	}

	var s State
	PackingInterleave(&s, block0, block1)
	for round := 0; round < consts.GIFT64_ROUNDS; round += 4 {
		quadrupleRound(&s, rk[round*2:round*2+8], roundConstants[round:round+4])
	}
	UnpackingInterleave(&s, block0, block1)
	return nil
}

// DecryptBlocksB decrypts two 8-byte blocks in place under rk, undoing
// EncryptBlocksB.
func DecryptBlocksB(rk *key.RoundKeys64, block0, block1 []byte) error {
	if len(block0) != consts.GIFT64_BLOCK_SIZE || len(block1) != consts.GIFT64_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-64 block size")
	}

	var s State
	PackingInterleave(&s, block0, block1)
	for round := consts.GIFT64_ROUNDS - 4; round >= 0; round -= 4 {
		invQuadrupleRound(&s, rk[round*2:round*2+8], roundConstants[round:round+4])
	}
	UnpackingInterleave(&s, block0, block1)
	return nil
}
