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
	"errors"

	"github.com/aadomn/gift/src/consts"
	"github.com/aadomn/gift/src/gift128"
	"github.com/aadomn/gift/src/gift64"
	"github.com/aadomn/gift/src/key"
)

// EncryptECB128 encrypts ptext under key using GIFT-128 in ECB mode.
// len(ptext) must be a multiple of the GIFT-128 block size.
func EncryptECB128(key []byte, ptext []byte) ([]byte, error) {
	return ecb128(key, ptext, false)
}

// DecryptECB128 decrypts ctext under key using GIFT-128 in ECB mode.
// len(ctext) must be a multiple of the GIFT-128 block size.
func DecryptECB128(key []byte, ctext []byte) ([]byte, error) {
	return ecb128(key, ctext, true)
}

func ecb128(k []byte, in []byte, decrypt bool) ([]byte, error) {
	if len(in)%consts.GIFT128_BLOCK_SIZE != 0 {
		return nil, errors.New("input size not a multiple of the GIFT-128 block size")
	}

	rk, err := key.NewRoundKeys128(k)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(in))
	copy(out, in)
	for off := 0; off < len(out); off += consts.GIFT128_BLOCK_SIZE {
		block := out[off : off+consts.GIFT128_BLOCK_SIZE]
		if decrypt {
			if err := gift128.DecryptBlock(rk, block); err != nil {
				return nil, err
			}
		} else {
			if err := gift128.EncryptBlock(rk, block); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// EncryptECBb128 encrypts ptext under key using the "b" variant of
// GIFT-128 (no bit permutation) in ECB mode.
func EncryptECBb128(key []byte, ptext []byte) ([]byte, error) {
	return ecbB128(key, ptext, false)
}

// DecryptECBb128 decrypts ctext under key using the "b" variant of
// GIFT-128 in ECB mode.
func DecryptECBb128(key []byte, ctext []byte) ([]byte, error) {
	return ecbB128(key, ctext, true)
}

func ecbB128(k []byte, in []byte, decrypt bool) ([]byte, error) {
	if len(in)%consts.GIFT128_BLOCK_SIZE != 0 {
		return nil, errors.New("input size not a multiple of the GIFT-128 block size")
	}

	rk, err := key.NewRoundKeys128(k)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(in))
	copy(out, in)
	for off := 0; off < len(out); off += consts.GIFT128_BLOCK_SIZE {
		block := out[off : off+consts.GIFT128_BLOCK_SIZE]
		if decrypt {
			if err := gift128.DecryptBlockB(rk, block); err != nil {
				return nil, err
			}
		} else {
			if err := gift128.EncryptBlockB(rk, block); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// EncryptECB64 encrypts ptext under key using GIFT-64 in ECB mode.
// len(ptext) must be a multiple of 2*GIFT64_BLOCK_SIZE, since the
// fixsliced round function processes two blocks at a time.
func EncryptECB64(k []byte, ptext []byte) ([]byte, error) {
	return ecb64(k, ptext, false)
}

// DecryptECB64 decrypts ctext under key using GIFT-64 in ECB mode.
func DecryptECB64(k []byte, ctext []byte) ([]byte, error) {
	return ecb64(k, ctext, true)
}

func ecb64(k []byte, in []byte, decrypt bool) ([]byte, error) {
	pairSize := 2 * consts.GIFT64_BLOCK_SIZE
	if len(in)%pairSize != 0 {
		return nil, errors.New("input size not a multiple of the GIFT-64 double-block size")
	}

	rk, err := key.NewRoundKeys64(k)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(in))
	copy(out, in)
	for off := 0; off < len(out); off += pairSize {
		block0 := out[off : off+consts.GIFT64_BLOCK_SIZE]
		block1 := out[off+consts.GIFT64_BLOCK_SIZE : off+pairSize]
		if decrypt {
			if err := gift64.DecryptBlocks(rk, block0, block1); err != nil {
				return nil, err
			}
		} else {
			if err := gift64.EncryptBlocks(rk, block0, block1); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// EncryptBECB64 encrypts ptext under key using the "b" (giftb64)
// variant of GIFT-64 in ECB mode. ptext is expected to already be in
// row-wise bitsliced form, and len(ptext) must be a multiple of
// 2*GIFT64_BLOCK_SIZE.
func EncryptBECB64(k []byte, ptext []byte) ([]byte, error) {
	return becb64(k, ptext, false)
}

// DecryptBECB64 decrypts ctext under key using the "b" variant of
// GIFT-64 in ECB mode.
func DecryptBECB64(k []byte, ctext []byte) ([]byte, error) {
	return becb64(k, ctext, true)
}

func becb64(k []byte, in []byte, decrypt bool) ([]byte, error) {
	pairSize := 2 * consts.GIFT64_BLOCK_SIZE
	if len(in)%pairSize != 0 {
		return nil, errors.New("input size not a multiple of the GIFT-64 double-block size")
	}

	rk, err := key.NewRoundKeys64(k)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(in))
	copy(out, in)
	for off := 0; off < len(out); off += pairSize {
		block0 := out[off : off+consts.GIFT64_BLOCK_SIZE]
		block1 := out[off+consts.GIFT64_BLOCK_SIZE : off+pairSize]
		if decrypt {
			if err := gift64.DecryptBlocksB(rk, block0, block1); err != nil {
				return nil, err
			}
		} else {
			if err := gift64.EncryptBlocksB(rk, block0, block1); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
