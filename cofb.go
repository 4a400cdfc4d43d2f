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
	"crypto/cipher"
	"crypto/subtle"
	"errors"

	"github.com/aadomn/gift/src/consts"
	"github.com/aadomn/gift/src/galois"
	"github.com/aadomn/gift/src/gift128"
	"github.com/aadomn/gift/src/key"
	"github.com/aadomn/gift/src/padding"
)

var (
	// ErrShortCiphertext is returned by Decrypt when the ciphertext is
	// shorter than the authentication tag.
	ErrShortCiphertext = errors.New("gift: ciphertext shorter than the authentication tag")

	// ErrAuthFailed is returned by Decrypt when the recovered tag does
	// not match the transmitted one.
	ErrAuthFailed = errors.New("gift: message authentication failed")
)

// cofbG applies the COFB linear mixing function to a 16-byte feedback
// block: the left half becomes the right half, and the new right half
// is the left half rotated left by one bit, xored with the old right
// half.
func cofbG(y []byte) []byte {
	left := y[0:8]
	right := y[8:16]

	rotated := make([]byte, 8)
	for i := 0; i < 8; i++ {
		next := (i + 1) % 8
		rotated[i] = (left[i] << 1) | (left[next] >> 7)
	}

	out := make([]byte, 16)
	copy(out[0:8], right)
	copy(out[8:16], galois.XorBlocks(rotated, right))
	return out
}

func xorTopBar(y []byte, l []byte) {
	for i := 0; i < 8; i++ {
		y[i] ^= l[i]
	}
}

func rho1(y []byte, m []byte) []byte {
	g := cofbG(y)
	return galois.XorBlocks(g, padding.OneZeroPad(m))
}

func rho(y []byte, m []byte) (yNext []byte, c []byte) {
	c = make([]byte, len(m))
	for i := range m {
		c[i] = y[i] ^ m[i]
	}
	g := cofbG(y)
	yNext = galois.XorBlocks(g, padding.OneZeroPad(m))
	return yNext, c
}

func rhoPrime(y []byte, c []byte) (yNext []byte, m []byte) {
	m = make([]byte, len(c))
	for i := range c {
		m[i] = y[i] ^ c[i]
	}
	g := cofbG(y)
	yNext = galois.XorBlocks(g, padding.OneZeroPad(m))
	return yNext, m
}

// cofbState carries the evolving offset and feedback register across
// the associated-data and message processing phases.
type cofbState struct {
	rk *key.RoundKeys128
	l  []byte
	y  []byte
}

func newCofbState(k, nonce []byte) (*cofbState, error) {
	if len(nonce) != consts.COFB_NONCE_SIZE {
		return nil, errors.New("gift: nonce size not matching COFB nonce size")
	}

	rk, err := key.NewRoundKeys128(k)
	if err != nil {
		return nil, err
	}

	y := make([]byte, consts.GIFT128_BLOCK_SIZE)
	copy(y, nonce)
	if err := gift128.EncryptBlockB(rk, y); err != nil {
		return nil, err
	}

	l := make([]byte, consts.COFB_OFFSET_SIZE)
	copy(l, y[0:consts.COFB_OFFSET_SIZE])

	return &cofbState{rk: rk, l: l, y: y}, nil
}

// processAD consumes the associated data, advancing the offset/
// feedback state per the COFB domain-separation rules. ptEmpty tells
// it whether the message to be processed afterwards is empty, which
// folds in two extra offset triplings per the COFB domain-separation
// rule for that case.
func (s *cofbState) processAD(ad []byte, ptEmpty bool) error {
	full := len(ad) / consts.GIFT128_BLOCK_SIZE
	if len(ad) > 0 && len(ad)%consts.GIFT128_BLOCK_SIZE == 0 {
		full--
	}

	off := 0
	for i := 0; i < full; i++ {
		block := ad[off : off+consts.GIFT128_BLOCK_SIZE]
		input := rho1(s.y, block)
		s.l = galois.Double(s.l)
		xorTopBar(input, s.l)
		if err := gift128.EncryptBlockB(s.rk, input); err != nil {
			return err
		}
		s.y = input
		off += consts.GIFT128_BLOCK_SIZE
	}

	s.l = galois.Triple(s.l)
	if len(ad) == 0 || len(ad)%consts.GIFT128_BLOCK_SIZE != 0 {
		s.l = galois.Triple(s.l)
	}
	if ptEmpty {
		s.l = galois.Triple(s.l)
		s.l = galois.Triple(s.l)
	}

	return s.processADTail(ad[off:])
}

func (s *cofbState) processADTail(tail []byte) error {
	input := rho1(s.y, tail)
	xorTopBar(input, s.l)
	if err := gift128.EncryptBlockB(s.rk, input); err != nil {
		return err
	}
	s.y = input
	return nil
}

// seal encrypts pt into a newly allocated buffer, returning
// ciphertext||tag; pt itself is not modified.
func (s *cofbState) seal(pt []byte) ([]byte, error) {
	out := make([]byte, len(pt)+consts.COFB_TAG_SIZE)

	if len(pt) == 0 {
		yNext, _ := rho(s.y, nil)
		xorTopBar(yNext, s.l)
		if err := gift128.EncryptBlockB(s.rk, yNext); err != nil {
			return nil, err
		}
		s.y = yNext
		copy(out[len(pt):], s.y)
		return out, nil
	}

	full := len(pt) / consts.GIFT128_BLOCK_SIZE
	if len(pt)%consts.GIFT128_BLOCK_SIZE == 0 {
		full--
	}

	off := 0
	for i := 0; i < full; i++ {
		block := pt[off : off+consts.GIFT128_BLOCK_SIZE]
		s.l = galois.Double(s.l)
		yNext, c := rho(s.y, block)
		copy(out[off:off+consts.GIFT128_BLOCK_SIZE], c)
		xorTopBar(yNext, s.l)
		if err := gift128.EncryptBlockB(s.rk, yNext); err != nil {
			return nil, err
		}
		s.y = yNext
		off += consts.GIFT128_BLOCK_SIZE
	}

	s.l = galois.Triple(s.l)
	if len(pt)%consts.GIFT128_BLOCK_SIZE != 0 {
		s.l = galois.Triple(s.l)
	}

	tail := pt[off:]
	yNext, c := rho(s.y, tail)
	copy(out[off:len(pt)], c)
	xorTopBar(yNext, s.l)
	if err := gift128.EncryptBlockB(s.rk, yNext); err != nil {
		return nil, err
	}
	s.y = yNext
	copy(out[len(pt):], s.y)

	return out, nil
}

// open decrypts ct into a newly allocated buffer, returning the
// recovered plaintext; ct itself is not modified. The caller is
// responsible for comparing the trailing tag.
func (s *cofbState) open(ct []byte) ([]byte, error) {
	out := make([]byte, len(ct))

	if len(ct) == 0 {
		yNext, _ := rhoPrime(s.y, nil)
		xorTopBar(yNext, s.l)
		if err := gift128.EncryptBlockB(s.rk, yNext); err != nil {
			return nil, err
		}
		s.y = yNext
		return out, nil
	}

	full := len(ct) / consts.GIFT128_BLOCK_SIZE
	if len(ct)%consts.GIFT128_BLOCK_SIZE == 0 {
		full--
	}

	off := 0
	for i := 0; i < full; i++ {
		block := ct[off : off+consts.GIFT128_BLOCK_SIZE]
		s.l = galois.Double(s.l)
		yNext, m := rhoPrime(s.y, block)
		copy(out[off:off+consts.GIFT128_BLOCK_SIZE], m)
		xorTopBar(yNext, s.l)
		if err := gift128.EncryptBlockB(s.rk, yNext); err != nil {
			return nil, err
		}
		s.y = yNext
		off += consts.GIFT128_BLOCK_SIZE
	}

	s.l = galois.Triple(s.l)
	if len(ct)%consts.GIFT128_BLOCK_SIZE != 0 {
		s.l = galois.Triple(s.l)
	}

	tail := ct[off:]
	yNext, m := rhoPrime(s.y, tail)
	copy(out[off:], m)
	xorTopBar(yNext, s.l)
	if err := gift128.EncryptBlockB(s.rk, yNext); err != nil {
		return nil, err
	}
	s.y = yNext

	return out, nil
}

// EncryptCOFB seals pt under key/nonce/ad with GIFT-COFB, returning
// ciphertext with the 16-byte authentication tag appended.
func EncryptCOFB(k, nonce, ad, pt []byte) ([]byte, error) {
	s, err := newCofbState(k, nonce)
	if err != nil {
		return nil, err
	}
	if err := s.processAD(ad, len(pt) == 0); err != nil {
		return nil, err
	}
	return s.seal(pt)
}

// DecryptCOFB opens ct (ciphertext||tag) under key/nonce/ad with
// GIFT-COFB. It returns ErrShortCiphertext if ct is shorter than the
// tag, and ErrAuthFailed if the recovered tag does not match; in
// either error case the returned plaintext slice must not be used.
func DecryptCOFB(k, nonce, ad, ct []byte) ([]byte, error) {
	if len(ct) < consts.COFB_TAG_SIZE {
		return nil, ErrShortCiphertext
	}

	s, err := newCofbState(k, nonce)
	if err != nil {
		return nil, err
	}
	bodyLen := len(ct) - consts.COFB_TAG_SIZE
	if err := s.processAD(ad, bodyLen == 0); err != nil {
		return nil, err
	}

	body := ct[:len(ct)-consts.COFB_TAG_SIZE]
	wantTag := ct[len(ct)-consts.COFB_TAG_SIZE:]

	pt, err := s.open(body)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare(s.y, wantTag) != 1 {
		return nil, ErrAuthFailed
	}

	return pt, nil
}

// AEAD wraps GIFT-COFB behind the standard library's crypto/cipher.AEAD
// interface so it can be dropped into code written against that
// abstraction.
type AEAD struct {
	key []byte
}

// NewAEAD returns a crypto/cipher.AEAD backed by GIFT-COFB for the
// given 16-byte key.
func NewAEAD(k []byte) (cipher.AEAD, error) {
	if len(k) != consts.GIFT128_KEY_SIZE {
		return nil, errors.New("gift: invalid key size")
	}
	stored := make([]byte, len(k))
	copy(stored, k)
	return &AEAD{key: stored}, nil
}

func (a *AEAD) NonceSize() int { return consts.COFB_NONCE_SIZE }

func (a *AEAD) Overhead() int { return consts.COFB_TAG_SIZE }

func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	ct, err := EncryptCOFB(a.key, nonce, additionalData, plaintext)
	if err != nil {
		panic("gift: " + err.Error())
	}
	return append(dst, ct...)
}

func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	pt, err := DecryptCOFB(a.key, nonce, additionalData, ciphertext)
	if err != nil {
		return nil, err
	}
	return append(dst, pt...), nil
}
