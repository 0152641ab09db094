// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package analysis provides sanity checks that apply to any block cipher:
// round trip correctness and the avalanche effect.
package analysis

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

// ErrRoundTrip is the error returned when decryption does not invert
// encryption.
var ErrRoundTrip = errors.New("analysis: decrypt(encrypt(p)) != p")

// NewBlockFunc constructs a keyed block cipher.
type NewBlockFunc func(key []byte) (cipher.Block, error)

// RoundTrip encrypts then decrypts every block of src with b, returning
// ErrRoundTrip on the first block that does not survive.  len(src) must be
// a multiple of the block size.
func RoundTrip(b cipher.Block, src []byte) error {
	bs := b.BlockSize()
	if len(src)%bs != 0 {
		return fmt.Errorf("analysis: input length %d is not a multiple of %d", len(src), bs)
	}

	ct, pt := make([]byte, bs), make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		b.Encrypt(ct, src[off:])
		b.Decrypt(pt, ct)
		if !bytes.Equal(pt, src[off:off+bs]) {
			return fmt.Errorf("%w: block %d", ErrRoundTrip, off/bs)
		}
	}

	return nil
}

// AvalancheResult is the outcome of an avalanche measurement.
type AvalancheResult struct {
	// Trials is the number of trials run.
	Trials int `json:"trials" yaml:"trials"`

	// PlaintextFlip is the mean fraction of ciphertext bits that changed
	// when a single plaintext bit was flipped.
	PlaintextFlip float64 `json:"plaintext_flip" yaml:"plaintext_flip"`

	// KeyFlip is the mean fraction of ciphertext bits that changed when a
	// single key bit was flipped.
	KeyFlip float64 `json:"key_flip" yaml:"key_flip"`
}

// Avalanche runs trials random experiments, each with a fresh key of
// keyLen bytes and a fresh plaintext block drawn from rng.  An ideal cipher
// yields fractions close to 0.5.
func Avalanche(newBlock NewBlockFunc, keyLen, blockSize, trials int, rng io.Reader) (*AvalancheResult, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("analysis: invalid trial count %d", trials)
	}
	if keyLen <= 0 || blockSize <= 0 {
		return nil, fmt.Errorf("analysis: invalid key length %d or block size %d", keyLen, blockSize)
	}

	key, pt := make([]byte, keyLen), make([]byte, blockSize)
	ct, ct2 := make([]byte, blockSize), make([]byte, blockSize)
	var pos [4]byte

	var ptBits, keyBits int
	for i := 0; i < trials; i++ {
		for _, b := range [][]byte{key, pt, pos[:]} {
			if _, err := io.ReadFull(rng, b); err != nil {
				return nil, err
			}
		}

		b, err := newBlock(key)
		if err != nil {
			return nil, err
		}
		b.Encrypt(ct, pt)

		ptBit := (int(pos[0])<<8 | int(pos[1])) % (8 * blockSize)
		pt[ptBit/8] ^= 1 << uint(ptBit%8)
		b.Encrypt(ct2, pt)
		pt[ptBit/8] ^= 1 << uint(ptBit%8)
		ptBits += hammingDistance(ct, ct2)

		keyBit := (int(pos[2])<<8 | int(pos[3])) % (8 * keyLen)
		key[keyBit/8] ^= 1 << uint(keyBit%8)
		if b, err = newBlock(key); err != nil {
			return nil, err
		}
		b.Encrypt(ct2, pt)
		keyBits += hammingDistance(ct, ct2)
	}

	total := float64(trials * 8 * blockSize)
	return &AvalancheResult{
		Trials:        trials,
		PlaintextFlip: float64(ptBits) / total,
		KeyFlip:       float64(keyBits) / total,
	}, nil
}

func hammingDistance(a, b []byte) int {
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}

	return n
}
