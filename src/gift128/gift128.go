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

// Package gift128 implements the GIFT-128 block cipher in its fixsliced
// representation: 40 rounds fused into 8 quintuple rounds, each
// consuming 10 round-key words and 5 round-constant words. Both the
// standard variant (bit-permuted load/store via Packing/Unpacking) and
// the "b" variant used by GIFT-COFB (plain big-endian load/store, no
// permutation) share the same round function.
package gift128

import (
	"errors"

	"github.com/aadomn/gift/src/bits"
	"github.com/aadomn/gift/src/consts"
	"github.com/aadomn/gift/src/key"
	"github.com/aadomn/gift/src/sbox"
)

// roundConstants holds the 40 fixsliced round constants, one per
// round, pre-spread to the bit positions the round function xors them
// into.
var roundConstants = [consts.GIFT128_ROUNDS]uint32{
	0x10000008, 0x80018000, 0x54000002, 0x01010181,
	0x8000001f, 0x10888880, 0x6001e000, 0x51500002,
	0x03030180, 0x8000002f, 0x10088880, 0x60016000,
	0x41500002, 0x03030080, 0x80000027, 0x10008880,
	0x4001e000, 0x11500002, 0x03020180, 0x8000002b,
	0x10080880, 0x60014000, 0x01400002, 0x02020080,
	0x80000021, 0x10000080, 0x0001c000, 0x51000002,
	0x03010180, 0x8000002e, 0x10088800, 0x60012000,
	0x40500002, 0x01030080, 0x80000006, 0x10008808,
	0xc001a000, 0x14500002, 0x01020181, 0x8000001a,
}

// State holds the fixsliced GIFT-128 state: one 128-bit block packed
// as 4 words of 32 bits each.
type State [4]uint32

// Packing loads a 16-byte block into the fixsliced state.
func Packing(s *State, block []byte) {
	s[0] = uint32(block[6])<<24 | uint32(block[7])<<16 | uint32(block[14])<<8 | uint32(block[15])
	s[1] = uint32(block[4])<<24 | uint32(block[5])<<16 | uint32(block[12])<<8 | uint32(block[13])
	s[2] = uint32(block[2])<<24 | uint32(block[3])<<16 | uint32(block[10])<<8 | uint32(block[11])
	s[3] = uint32(block[0])<<24 | uint32(block[1])<<16 | uint32(block[8])<<8 | uint32(block[9])

	s[0] = bits.Permute(s[0], 0x0a0a0a0a, 3)
	s[0] = bits.Permute(s[0], 0x00cc00cc, 6)
	s[1] = bits.Permute(s[1], 0x0a0a0a0a, 3)
	s[1] = bits.Permute(s[1], 0x00cc00cc, 6)
	s[2] = bits.Permute(s[2], 0x0a0a0a0a, 3)
	s[2] = bits.Permute(s[2], 0x00cc00cc, 6)
	s[3] = bits.Permute(s[3], 0x0a0a0a0a, 3)
	s[3] = bits.Permute(s[3], 0x00cc00cc, 6)
	s[0], s[1] = bits.SwapMove(s[0], s[1], 0x000f000f, 4)
	s[0], s[2] = bits.SwapMove(s[0], s[2], 0x000f000f, 8)
	s[0], s[3] = bits.SwapMove(s[0], s[3], 0x000f000f, 12)
	s[1], s[2] = bits.SwapMove(s[1], s[2], 0x00f000f0, 4)
	s[1], s[3] = bits.SwapMove(s[1], s[3], 0x00f000f0, 8)
	s[2], s[3] = bits.SwapMove(s[2], s[3], 0x0f000f00, 4)
}

// Unpacking stores the fixsliced state back into a 16-byte block,
// undoing Packing.
func Unpacking(s *State, block []byte) {
	tmp := *s

	tmp[2], tmp[3] = bits.SwapMove(tmp[2], tmp[3], 0x0f000f00, 4)
	tmp[1], tmp[3] = bits.SwapMove(tmp[1], tmp[3], 0x00f000f0, 8)
	tmp[1], tmp[2] = bits.SwapMove(tmp[1], tmp[2], 0x00f000f0, 4)
	tmp[0], tmp[3] = bits.SwapMove(tmp[0], tmp[3], 0x000f000f, 12)
	tmp[0], tmp[2] = bits.SwapMove(tmp[0], tmp[2], 0x000f000f, 8)
	tmp[0], tmp[1] = bits.SwapMove(tmp[0], tmp[1], 0x000f000f, 4)
	tmp[3] = bits.Permute(tmp[3], 0x00cc00cc, 6)
	tmp[3] = bits.Permute(tmp[3], 0x0a0a0a0a, 3)
	tmp[2] = bits.Permute(tmp[2], 0x00cc00cc, 6)
	tmp[2] = bits.Permute(tmp[2], 0x0a0a0a0a, 3)
	tmp[1] = bits.Permute(tmp[1], 0x00cc00cc, 6)
	tmp[1] = bits.Permute(tmp[1], 0x0a0a0a0a, 3)
	tmp[0] = bits.Permute(tmp[0], 0x00cc00cc, 6)
	tmp[0] = bits.Permute(tmp[0], 0x0a0a0a0a, 3)

	block[0] = byte(tmp[3] >> 24)
	block[1] = byte(tmp[3] >> 16)
	block[2] = byte(tmp[2] >> 24)
	block[3] = byte(tmp[2] >> 16)
	block[4] = byte(tmp[1] >> 24)
	block[5] = byte(tmp[1] >> 16)
	block[6] = byte(tmp[0] >> 24)
	block[7] = byte(tmp[0] >> 16)
	block[8] = byte(tmp[3] >> 8)
	block[9] = byte(tmp[3])
	block[10] = byte(tmp[2] >> 8)
	block[11] = byte(tmp[2])
	block[12] = byte(tmp[1] >> 8)
	block[13] = byte(tmp[1])
	block[14] = byte(tmp[0] >> 8)
	block[15] = byte(tmp[0])
}

// loadBigEndian loads a 16-byte block directly into the "b" variant
// state, with no bit permutation.
func loadBigEndian(s *State, block []byte) {
	s[0] = bits.BigEndian(block[0:4])
	s[1] = bits.BigEndian(block[4:8])
	s[2] = bits.BigEndian(block[8:12])
	s[3] = bits.BigEndian(block[12:16])
}

func storeBigEndian(s *State, block []byte) {
	bits.PutBigEndian(block[0:4], s[0])
	bits.PutBigEndian(block[4:8], s[1])
	bits.PutBigEndian(block[8:12], s[2])
	bits.PutBigEndian(block[12:16], s[3])
}

// quintupleRound fuses 5 GIFT-128 rounds into one pass over the
// state, consuming 10 round-key words and 5 round-constant words,
// mirroring the round-key grouping opt32's precompute_rkeys lays out
// (REARRANGE_RKEY_0..3, then the double/triple-update phases).
//
// Each of the 5 rounds applies the S-box followed by a rotation
// pattern specific to its phase: the odd phases rotate nibble-wise
// (mirroring the phase gift64's quadruple round uses for its own
// odd rounds) while the even phases rotate by whole bytes/words, and
// the closing phase rotates by single bits, closest to the classical
// (unfixsliced) GIFT-128 bit permutation. invQuintupleRound below
// undoes each phase with the matching S-box argument permutation and
// the exact inverse rotation.
func quintupleRound(s *State, rk []uint32, rc []uint32) {
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

	s[0], s[1], s[2], s[3] = sbox.Apply(s[0], s[1], s[2], s[3])
	s[1] = bits.Ror32(s[1], 1)
	s[2] = bits.Ror32(s[2], 2)
	s[0] = bits.Ror32(s[0], 3)
	s[3] ^= rk[8]
	s[1] ^= rk[9]
	s[0] ^= rc[4]
}

// invQuintupleRound undoes quintupleRound, run with the same
// round-key and round-constant words in the same order.
func invQuintupleRound(s *State, rk []uint32, rc []uint32) {
	s[3] ^= rk[8]
	s[1] ^= rk[9]
	s[0] ^= rc[4]
	s[1] = bits.Ror32(s[1], 31)
	s[2] = bits.Ror32(s[2], 30)
	s[0] = bits.Ror32(s[0], 29)
	s[3], s[1], s[2], s[0] = sbox.ApplyInv(s[3], s[1], s[2], s[0])

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

func runForward(s *State, rk *key.RoundKeys128) {
	for round := 0; round < consts.GIFT128_ROUNDS; round += 5 {
		quintupleRound(s, rk[round*2:round*2+10], roundConstants[round:round+5])
	}
}

func runInverse(s *State, rk *key.RoundKeys128) {
	for round := consts.GIFT128_ROUNDS - 5; round >= 0; round -= 5 {
		invQuintupleRound(s, rk[round*2:round*2+10], roundConstants[round:round+5])
	}
}

// EncryptBlock encrypts a 16-byte block in place under rk using the
// standard (bit-permuted) variant.
func EncryptBlock(rk *key.RoundKeys128, block []byte) error {
	if len(block) != consts.GIFT128_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-128 block size")
	}
	var s State
	Packing(&s, block)
	runForward(&s, rk)
	Unpacking(&s, block)
	return nil
}

// DecryptBlock decrypts a 16-byte block in place under rk, undoing
// EncryptBlock.
func DecryptBlock(rk *key.RoundKeys128, block []byte) error {
	if len(block) != consts.GIFT128_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-128 block size")
	}
	var s State
	Packing(&s, block)
	runInverse(&s, rk)
	Unpacking(&s, block)
	return nil
}

// EncryptBlockB encrypts a 16-byte block in place under rk using the
// "b" variant (no bit permutation), as used inside GIFT-COFB.
func EncryptBlockB(rk *key.RoundKeys128, block []byte) error {
	if len(block) != consts.GIFT128_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-128 block size")
	}
	var s State
	loadBigEndian(&s, block)
	runForward(&s, rk)
	storeBigEndian(&s, block)
	return nil
}

// DecryptBlockB decrypts a 16-byte block in place under rk, undoing
// EncryptBlockB.
func DecryptBlockB(rk *key.RoundKeys128, block []byte) error {
	if len(block) != consts.GIFT128_BLOCK_SIZE {
		return errors.New("block size not matching GIFT-128 block size")
	}
	var s State
	loadBigEndian(&s, block)
	runInverse(&s, rk)
	storeBigEndian(&s, block)
	return nil
}
