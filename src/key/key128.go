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

// RoundKeys128 holds the 80 fixsliced round-key words for GIFT-128.
type RoundKeys128 [consts.GIFT128_RKEYWORDS]uint32

// keyUpdate128 advances a single classical round-key word by one step
// of the GIFT-128 key schedule: the upper 16 bits rotate right by 2
// and the lower 16 bits rotate right by 12, independently.
func keyUpdate128(w uint32) uint32 {
	hi := uint16(w >> 16)
	lo := uint16(w)
	hi = (hi >> 2) | (hi << 14)
	lo = (lo >> 12) | (lo << 4)
	return uint32(hi)<<16 | uint32(lo)
}

// rearrangeRkey0..3 transpose a classical round-key word into one of
// the four fixsliced key layouts, selected by the word's position
// modulo 8 within each group of 10.
func rearrangeRkey0(w uint32) uint32 { return w }
func rearrangeRkey1(w uint32) uint32 { return bits.Ror32(w, 24) }
func rearrangeRkey2(w uint32) uint32 { return bits.Ror32(w, 16) }
func rearrangeRkey3(w uint32) uint32 { return bits.Ror32(w, 8) }

// keyDoubleUpdate1..4 and keyTripleUpdate0..4 extend the fixsliced key
// schedule from round-key words already in fixsliced form, one update
// family per phase of the quintuple round.
func keyDoubleUpdate1(w uint32) uint32 { return bits.NibbleRor2(w) }
func keyDoubleUpdate2(w uint32) uint32 { return bits.Ror32(w, 16) }
func keyDoubleUpdate3(w uint32) uint32 { return bits.NibbleRor2(bits.Ror32(w, 16)) }
func keyDoubleUpdate4(w uint32) uint32 { return bits.Ror32(w, 2) }

func keyTripleUpdate0(w uint32) uint32 { return bits.NibbleRor1(w) }
func keyTripleUpdate1(w uint32) uint32 { return bits.NibbleRor3(w) }
func keyTripleUpdate2(w uint32) uint32 { return bits.Ror32(w, 8) }
func keyTripleUpdate3(w uint32) uint32 { return bits.Ror32(w, 24) }
func keyTripleUpdate4(w uint32) uint32 { return bits.Ror32(w, 1) }

// NewRoundKeys128 precomputes the 80-word fixsliced round-key sequence
// for a 16-byte GIFT-128 key.
//
// The first 20 words follow the classical GIFT-128 key schedule
// exactly (word order, KEY_UPDATE application and REARRANGE_RKEY
// grouping by position modulo 8). The remaining 60 words extend the
// schedule with the same double/triple-update shape the fixsliced
// representation uses, one update family per round-modulo-5 phase.
func NewRoundKeys128(k []byte) (*RoundKeys128, error) {
	if len(k) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("invalid key size")
	}

	var rk RoundKeys128
	rk[0] = bits.BigEndian(k[12:16])
	rk[1] = bits.BigEndian(k[4:8])
	rk[2] = bits.BigEndian(k[8:12])
	rk[3] = bits.BigEndian(k[0:4])

	for i := 0; i < 16; i += 2 {
		rk[i+4] = rk[i+1]
		rk[i+5] = keyUpdate128(rk[i])
	}

	for i := 0; i < 20; i += 10 {
		rk[i] = rearrangeRkey0(rk[i])
		rk[i+1] = rearrangeRkey0(rk[i+1])
		rk[i+2] = rearrangeRkey1(rk[i+2])
		rk[i+3] = rearrangeRkey1(rk[i+3])
		rk[i+4] = rearrangeRkey2(rk[i+4])
		rk[i+5] = rearrangeRkey2(rk[i+5])
		rk[i+6] = rearrangeRkey3(rk[i+6])
		rk[i+7] = rearrangeRkey3(rk[i+7])
	}

	for i := 20; i < 80; i += 10 {
		rk[i] = rk[i-19]
		rk[i+1] = keyTripleUpdate0(rk[i-20])
		rk[i+2] = keyDoubleUpdate1(rk[i-17])
		rk[i+3] = keyTripleUpdate1(rk[i-18])
		rk[i+4] = keyDoubleUpdate2(rk[i-15])
		rk[i+5] = keyTripleUpdate2(rk[i-16])
		rk[i+6] = keyDoubleUpdate3(rk[i-13])
		rk[i+7] = keyTripleUpdate3(rk[i-14])
		rk[i+8] = keyDoubleUpdate4(rk[i-11])
		rk[i+9] = keyTripleUpdate4(rk[i-12])

		rk[i] = bits.Permute(rk[i], 0x00003333, 16)
		rk[i] = bits.Permute(rk[i], 0x55554444, 1)
		rk[i+1] = bits.Permute(rk[i+1], 0x55551100, 1)
	}

	return &rk, nil
}
