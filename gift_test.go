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

package gift

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func TestGift128ECBRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustDecode(t, "00112233445566778899aabbccddeeff")

	ct, err := EncryptECB128(k, pt)
	if err != nil {
		t.Fatalf("EncryptECB128: %v", err)
	}
	got, err := DecryptECB128(k, ct)
	if err != nil {
		t.Fatalf("DecryptECB128: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("DecryptECB128(EncryptECB128(p)) = %x, want %x", got, pt)
	}
}

func TestGift128ECBRejectsPartialBlock(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	if _, err := EncryptECB128(k, make([]byte, 15)); err == nil {
		t.Fatal("EncryptECB128 accepted a non-multiple-of-16 input, want error")
	}
}

func TestGift64ECBRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustDecode(t, "000102030405060708090a0b0c0d0e0f")

	ct, err := EncryptECB64(k, pt)
	if err != nil {
		t.Fatalf("EncryptECB64: %v", err)
	}
	got, err := DecryptECB64(k, ct)
	if err != nil {
		t.Fatalf("DecryptECB64: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("DecryptECB64(EncryptECB64(p)) = %x, want %x", got, pt)
	}
}

func TestGift128ECBbRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustDecode(t, "00112233445566778899aabbccddeeff")

	ct, err := EncryptECBb128(k, pt)
	if err != nil {
		t.Fatalf("EncryptECBb128: %v", err)
	}
	got, err := DecryptECBb128(k, ct)
	if err != nil {
		t.Fatalf("DecryptECBb128: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("DecryptECBb128(EncryptECBb128(p)) = %x, want %x", got, pt)
	}
}

func TestGift64BECBRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	pt := mustDecode(t, "000102030405060708090a0b0c0d0e0f")

	ct, err := EncryptBECB64(k, pt)
	if err != nil {
		t.Fatalf("EncryptBECB64: %v", err)
	}
	got, err := DecryptBECB64(k, ct)
	if err != nil {
		t.Fatalf("DecryptBECB64: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("DecryptBECB64(EncryptBECB64(p)) = %x, want %x", got, pt)
	}
}

func TestCofbEmptyRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	n := mustDecode(t, "000102030405060708090a0b0c0d0e0f")

	ct, err := EncryptCOFB(k, n, nil, nil)
	if err != nil {
		t.Fatalf("EncryptCOFB: %v", err)
	}
	if len(ct) != 16 {
		t.Fatalf("EncryptCOFB(empty,empty) produced %d bytes, want 16 (tag only)", len(ct))
	}

	pt, err := DecryptCOFB(k, n, nil, ct)
	if err != nil {
		t.Fatalf("DecryptCOFB: %v", err)
	}
	if len(pt) != 0 {
		t.Fatalf("DecryptCOFB recovered %d bytes, want 0", len(pt))
	}
}

func TestCofbRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	n := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	ad := mustDecode(t, "00010203")
	pt := mustDecode(t, "0001020304050607")

	ct, err := EncryptCOFB(k, n, ad, pt)
	if err != nil {
		t.Fatalf("EncryptCOFB: %v", err)
	}
	if len(ct) != len(pt)+16 {
		t.Fatalf("EncryptCOFB produced %d bytes, want %d", len(ct), len(pt)+16)
	}

	got, err := DecryptCOFB(k, n, ad, ct)
	if err != nil {
		t.Fatalf("DecryptCOFB: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("DecryptCOFB(EncryptCOFB(p)) = %x, want %x", got, pt)
	}
}

func TestCofbRoundTripMultiBlock(t *testing.T) {
	k := mustDecode(t, "0f0e0d0c0b0a09080706050403020100")
	n := mustDecode(t, "0102030405060708090a0b0c0d0e0f00")
	ad := bytes.Repeat([]byte{0x42}, 40)
	pt := bytes.Repeat([]byte{0x24}, 50)

	ct, err := EncryptCOFB(k, n, ad, pt)
	if err != nil {
		t.Fatalf("EncryptCOFB: %v", err)
	}

	got, err := DecryptCOFB(k, n, ad, ct)
	if err != nil {
		t.Fatalf("DecryptCOFB: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("DecryptCOFB(EncryptCOFB(p)) = %x, want %x", got, pt)
	}
}

func TestCofbTagForgeryDetected(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	n := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	ad := mustDecode(t, "00010203")
	pt := mustDecode(t, "0001020304050607")

	ct, err := EncryptCOFB(k, n, ad, pt)
	if err != nil {
		t.Fatalf("EncryptCOFB: %v", err)
	}

	forged := append([]byte(nil), ct...)
	forged[len(forged)-16] ^= 0x01

	if _, err := DecryptCOFB(k, n, ad, forged); err == nil {
		t.Fatal("DecryptCOFB accepted a forged tag, want ErrAuthFailed")
	}
}

func TestCofbDecryptRejectsShortCiphertext(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	n := mustDecode(t, "000102030405060708090a0b0c0d0e0f")

	if _, err := DecryptCOFB(k, n, nil, make([]byte, 15)); err != ErrShortCiphertext {
		t.Fatalf("DecryptCOFB with 15-byte input returned %v, want ErrShortCiphertext", err)
	}
}

func TestAEADInterfaceRoundTrip(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	aead, err := NewAEAD(k)
	if err != nil {
		t.Fatalf("NewAEAD: %v", err)
	}

	n := mustDecode(t, "000102030405060708090a0b0c0d0e0f")
	pt := []byte("gift-cofb plaintext")
	ad := []byte("associated data")

	sealed := aead.Seal(nil, n, pt, ad)
	opened, err := aead.Open(nil, n, sealed, ad)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, pt) {
		t.Fatalf("Open(Seal(p)) = %q, want %q", opened, pt)
	}
}
