// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package aes provides a portable table driven implementation of the AES
// block cipher as specified in FIPS-197.
//
// The implementation follows the textbook byte oriented structure and makes
// no attempt at being constant time.
package aes

import (
	"encoding/binary"
	"math/bits"
	"unsafe"

	"gitlab.com/yawning/blockcipher.git/internal/api"
	"gitlab.com/yawning/blockcipher.git/internal/tables"
)

const maxScheduleWords = 4 * (14 + 1)

// Factory is the portable AES implementation factory.
var Factory api.Factory = &genericFactory{}

type genericFactory struct{}

func (f *genericFactory) Name() string {
	return "generic"
}

func (f *genericFactory) ContextSize() int {
	return int(unsafe.Sizeof(Cipher{}))
}

func (f *genericFactory) New(key []byte) (api.Instance, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Cipher is a keyed AES instance.
type Cipher struct {
	roundKeys [maxScheduleWords]uint32
	rounds    int
}

// New expands key into a new Cipher.  The key must be 16, 24 or 32 bytes,
// selecting AES-128, AES-192 or AES-256.
func New(key []byte) (*Cipher, error) {
	var c Cipher
	switch len(key) {
	case 16:
		c.rounds = 10
	case 24:
		c.rounds = 12
	case 32:
		c.rounds = 14
	default:
		return nil, api.ErrInvalidKeyLength
	}
	c.expandKey(key)

	return &c, nil
}

// Rounds returns the number of rounds.
func (c *Cipher) Rounds() int {
	return c.rounds
}

// RoundKeys returns a copy of the expanded key schedule, 4*(Rounds()+1)
// words long.
func (c *Cipher) RoundKeys() []uint32 {
	return append([]uint32{}, c.roundKeys[:4*(c.rounds+1)]...)
}

// Reset clears the key schedule.
func (c *Cipher) Reset() {
	for i := range c.roundKeys {
		c.roundKeys[i] = 0
	}
}

func (c *Cipher) expandKey(key []byte) {
	nk := len(key) / 4
	w := c.roundKeys[:4*(c.rounds+1)]

	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < len(w); i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ tables.Rcon[i/nk]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}
}

// Encrypt encrypts a single block.
func (c *Cipher) Encrypt(dst, src *[api.BlockSize]byte) {
	s := state(*src)

	s.addRoundKey(c.roundKeys[0:4])
	for i := 1; i < c.rounds; i++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(c.roundKeys[4*i : 4*i+4])
	}

	// The final round omits MixColumns.
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(c.roundKeys[4*c.rounds : 4*c.rounds+4])

	*dst = s
	s.clear()
}

// Decrypt decrypts a single block.
func (c *Cipher) Decrypt(dst, src *[api.BlockSize]byte) {
	s := state(*src)

	s.addRoundKey(c.roundKeys[4*c.rounds : 4*c.rounds+4])
	for n, i := 0, c.rounds-1; n < c.rounds-1; n, i = n+1, i-1 {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(c.roundKeys[4*i : 4*i+4])
		s.invMixColumns()
	}

	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(c.roundKeys[0:4])

	*dst = s
	s.clear()
}

func rotWord(w uint32) uint32 {
	return bits.RotateLeft32(w, 8)
}

func subWord(w uint32) uint32 {
	return uint32(tables.Sbox[w>>24])<<24 |
		uint32(tables.Sbox[byte(w>>16)])<<16 |
		uint32(tables.Sbox[byte(w>>8)])<<8 |
		uint32(tables.Sbox[byte(w)])
}

var _ api.Instance = (*Cipher)(nil)
