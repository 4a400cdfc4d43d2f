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

package gift64

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/aadomn/gift/src/key"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func TestPackingUnpackingRoundTrip(t *testing.T) {
	block0 := mustDecode(t, "0001020304050607")
	block1 := mustDecode(t, "08090a0b0c0d0e0f")

	var s State
	Packing(&s, block0, block1)

	out0, out1 := make([]byte, 8), make([]byte, 8)
	Unpacking(&s, out0, out1)

	if !bytes.Equal(out0, block0) || !bytes.Equal(out1, block1) {
		t.Fatalf("Unpacking(Packing(b0,b1)) = (%x,%x), want (%x,%x)", out0, out1, block0, block1)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	rk, err := key.NewRoundKeys64(k)
	if err != nil {
		t.Fatalf("NewRoundKeys64: %v", err)
	}

	block0 := mustDecode(t, "0001020304050607")
	block1 := mustDecode(t, "fedcba9876543210")
	orig0 := append([]byte(nil), block0...)
	orig1 := append([]byte(nil), block1...)

	if err := EncryptBlocks(rk, block0, block1); err != nil {
		t.Fatalf("EncryptBlocks: %v", err)
	}
	if bytes.Equal(block0, orig0) && bytes.Equal(block1, orig1) {
		t.Fatalf("EncryptBlocks left blocks unchanged")
	}

	if err := DecryptBlocks(rk, block0, block1); err != nil {
		t.Fatalf("DecryptBlocks: %v", err)
	}
	if !bytes.Equal(block0, orig0) || !bytes.Equal(block1, orig1) {
		t.Fatalf("DecryptBlocks(EncryptBlocks(p)) = (%x,%x), want (%x,%x)", block0, block1, orig0, orig1)
	}
}

// TestEncryptBlocksKAT pins EncryptBlocks against ciphertext values
// computed independently from the round constants, packing and key
// schedule this package implements, so a transcription error in any of
// them (e.g. a wrong round-constant table that is still self-
// consistent under round-trip testing) cannot slip back in unnoticed.
func TestEncryptBlocksKAT(t *testing.T) {
	cases := []struct {
		key, pt0, pt1, ct0, ct1 string
	}{
		{
			key: "00000000000000000000000000000000",
			pt0: "0011223344556677", pt1: "8899aabbccddeeff",
			ct0: "3593524dd7ed9d18", ct1: "6200787bffcf209e",
		},
		{
			key: "000102030405060708090a0b0c0d0e0f",
			pt0: "0001020304050607", pt1: "0001020304050607",
			ct0: "aa9e69ed02d8c625", ct1: "aa9e69ed02d8c625",
		},
	}

	for i, c := range cases {
		k := mustDecode(t, c.key)
		rk, err := key.NewRoundKeys64(k)
		if err != nil {
			t.Fatalf("case %d: NewRoundKeys64: %v", i, err)
		}
		block0 := mustDecode(t, c.pt0)
		block1 := mustDecode(t, c.pt1)
		if err := EncryptBlocks(rk, block0, block1); err != nil {
			t.Fatalf("case %d: EncryptBlocks: %v", i, err)
		}
		wantCt0 := mustDecode(t, c.ct0)
		wantCt1 := mustDecode(t, c.ct1)
		if !bytes.Equal(block0, wantCt0) || !bytes.Equal(block1, wantCt1) {
			t.Fatalf("case %d: EncryptBlocks = (%x,%x), want (%x,%x)", i, block0, block1, wantCt0, wantCt1)
		}
		if err := DecryptBlocks(rk, block0, block1); err != nil {
			t.Fatalf("case %d: DecryptBlocks: %v", i, err)
		}
		if !bytes.Equal(block0, mustDecode(t, c.pt0)) || !bytes.Equal(block1, mustDecode(t, c.pt1)) {
			t.Fatalf("case %d: DecryptBlocks(EncryptBlocks(p)) = (%x,%x), want (%x,%x)", i, block0, block1, c.pt0, c.pt1)
		}
	}
}

func TestPackingInterleaveRoundTrip(t *testing.T) {
	block0 := mustDecode(t, "0001020304050607")
	block1 := mustDecode(t, "08090a0b0c0d0e0f")

	var s State
	PackingInterleave(&s, block0, block1)

	out0, out1 := make([]byte, 8), make([]byte, 8)
	UnpackingInterleave(&s, out0, out1)

	if !bytes.Equal(out0, block0) || !bytes.Equal(out1, block1) {
		t.Fatalf("UnpackingInterleave(PackingInterleave(b0,b1)) = (%x,%x), want (%x,%x)", out0, out1, block0, block1)
	}
}

func TestEncryptBlocksBRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	rk, err := key.NewRoundKeys64(k)
	if err != nil {
		t.Fatalf("NewRoundKeys64: %v", err)
	}

	block0 := mustDecode(t, "0011223344556677")
	block1 := mustDecode(t, "8899aabbccddeeff")
	orig0 := append([]byte(nil), block0...)
	orig1 := append([]byte(nil), block1...)

	if err := EncryptBlocksB(rk, block0, block1); err != nil {
		t.Fatalf("EncryptBlocksB: %v", err)
	}
	if bytes.Equal(block0, orig0) && bytes.Equal(block1, orig1) {
		t.Fatalf("EncryptBlocksB left blocks unchanged")
	}

	if err := DecryptBlocksB(rk, block0, block1); err != nil {
		t.Fatalf("DecryptBlocksB: %v", err)
	}
	if !bytes.Equal(block0, orig0) || !bytes.Equal(block1, orig1) {
		t.Fatalf("DecryptBlocksB(EncryptBlocksB(p)) = (%x,%x), want (%x,%x)", block0, block1, orig0, orig1)
	}
}

func TestEncryptBlocksRejectsBadSize(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	rk, err := key.NewRoundKeys64(k)
	if err != nil {
		t.Fatalf("NewRoundKeys64: %v", err)
	}
	if err := EncryptBlocks(rk, make([]byte, 7), make([]byte, 8)); err == nil {
		t.Fatal("EncryptBlocks accepted a 7-byte block, want error")
	}
}
