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

// Package gift implements the GIFT-128 and GIFT-64 block ciphers and
// the GIFT-COFB authenticated encryption construction built on top of
// GIFTb-128. All three share a fixsliced, constant-time round
// function and a common 16-byte key.
package gift

import (
	"errors"

	"github.com/aadomn/gift/src/consts"
)

// Gift128 wraps a GIFT-128 key and exposes ECB-mode encryption and
// decryption over it.
type Gift128 struct {
	key []byte
}

// NewGift128 validates key and returns a Gift128 ready to encrypt or
// decrypt 16-byte blocks.
func NewGift128(key []byte) (*Gift128, error) {
	if len(key) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("gift: key size not matching GIFT-128 key size")
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Gift128{key: k}, nil
}

// EncryptECB encrypts ptext (a multiple of the GIFT-128 block size)
// using the standard, bit-permuted variant.
func (g *Gift128) EncryptECB(ptext []byte) ([]byte, error) {
	return EncryptECB128(g.key, ptext)
}

// DecryptECB decrypts ctext using the standard variant.
func (g *Gift128) DecryptECB(ctext []byte) ([]byte, error) {
	return DecryptECB128(g.key, ctext)
}

// Gift64 wraps a 128-bit key and exposes ECB-mode encryption and
// decryption over GIFT-64, which always evaluates two 8-byte blocks
// together.
type Gift64 struct {
	key []byte
}

// NewGift64 validates key and returns a Gift64 ready to encrypt or
// decrypt pairs of 8-byte blocks.
func NewGift64(key []byte) (*Gift64, error) {
	if len(key) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("gift: key size not matching GIFT-64 key size")
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Gift64{key: k}, nil
}

// EncryptECB encrypts ptext (a multiple of 16 bytes, two 8-byte blocks
// per unit) using GIFT-64.
func (g *Gift64) EncryptECB(ptext []byte) ([]byte, error) {
	return EncryptECB64(g.key, ptext)
}

// DecryptECB decrypts ctext using GIFT-64.
func (g *Gift64) DecryptECB(ctext []byte) ([]byte, error) {
	return DecryptECB64(g.key, ctext)
}

// CofbAEAD wraps a 128-bit key and exposes one-shot GIFT-COFB sealing
// and opening.
type CofbAEAD struct {
	key []byte
}

// NewCofbAEAD validates key and returns a CofbAEAD ready to seal or
// open messages.
func NewCofbAEAD(key []byte) (*CofbAEAD, error) {
	if len(key) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("gift: key size not matching COFB key size")
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &CofbAEAD{key: k}, nil
}

// Seal encrypts and authenticates pt under nonce/ad, returning
// ciphertext||tag.
func (c *CofbAEAD) Seal(nonce, ad, pt []byte) ([]byte, error) {
	return EncryptCOFB(c.key, nonce, ad, pt)
}

// Open verifies and decrypts ct (ciphertext||tag) under nonce/ad.
func (c *CofbAEAD) Open(nonce, ad, ct []byte) ([]byte, error) {
	return DecryptCOFB(c.key, nonce, ad, ct)
}
