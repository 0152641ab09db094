// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package camellia provides a portable table driven implementation of the
// Camellia block cipher (RFC 3713).
package camellia

import (
	"encoding/binary"
	"unsafe"

	"gitlab.com/yawning/blockcipher.git/internal/api"
	"gitlab.com/yawning/blockcipher.git/internal/tables"
)

const maxSubkeys = 68

// Factory is the portable Camellia implementation factory.
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

// Cipher is a keyed Camellia instance.
type Cipher struct {
	k       [4]quad
	subkeys [maxSubkeys]uint32
	rounds  int
}

// New derives the key schedule for key and returns a new Cipher.  The key
// must be 16, 24 or 32 bytes.
func New(key []byte) (*Cipher, error) {
	var c Cipher
	switch len(key) {
	case 16:
		c.rounds = 18
	case 24, 32:
		c.rounds = 24
	default:
		return nil, api.ErrInvalidKeyLength
	}
	c.deriveKeyMaterial(key)

	schedule := schedule128[:]
	if len(key) != 16 {
		schedule = schedule256[:]
	}
	for _, e := range schedule {
		e.extract(&c.k[e.src], c.subkeys[e.index:e.index+2])
	}

	return &c, nil
}

// Rounds returns the number of Feistel rounds.
func (c *Cipher) Rounds() int {
	return c.rounds
}

// Subkeys returns a copy of the subkey sequence, 52 words for 128-bit keys
// and 68 words otherwise.
func (c *Cipher) Subkeys() []uint32 {
	return append([]uint32{}, c.subkeys[:c.numSubkeys()]...)
}

// KeyMaterial returns copies of KL, KR, KA and KB.
func (c *Cipher) KeyMaterial() (kl, kr, ka, kb [4]uint32) {
	return c.k[keyL], c.k[keyR], c.k[keyA], c.k[keyB]
}

// Reset clears the key material and subkeys.
func (c *Cipher) Reset() {
	for i := range c.k {
		c.k[i] = quad{}
	}
	for i := range c.subkeys {
		c.subkeys[i] = 0
	}
}

func (c *Cipher) numSubkeys() int {
	// kw1..4, 2 words per round, 4 words per FL layer.
	return 8 + 2*c.rounds + 4*(c.rounds/6-1)
}

func (c *Cipher) deriveKeyMaterial(key []byte) {
	var raw [32]byte
	copy(raw[:], key)
	if len(key) == 24 {
		for i := 16; i < 24; i++ {
			raw[i+8] = ^raw[i]
		}
	}

	kl, kr := &c.k[keyL], &c.k[keyR]
	for i := 0; i < 4; i++ {
		kl[i] = binary.BigEndian.Uint32(raw[4*i:])
		kr[i] = binary.BigEndian.Uint32(raw[16+4*i:])
	}
	for i := range raw {
		raw[i] = 0
	}

	d := *kl
	d.xor(kr)
	for i := 0; i < 6; i++ {
		d[0], d[1], d[2], d[3] = feistel(d[0], d[1], d[2], d[3], tables.Sigma[2*i], tables.Sigma[2*i+1])
		switch i {
		case 1:
			d.xor(kl)
		case 3:
			c.k[keyA] = d
			d.xor(kr)
		}
	}
	c.k[keyB] = d
}

// Encrypt encrypts a single block.
func (c *Cipher) Encrypt(dst, src *[api.BlockSize]byte) {
	ks := c.subkeys[:c.numSubkeys()]

	l1 := binary.BigEndian.Uint32(src[0:]) ^ ks[0]
	l2 := binary.BigEndian.Uint32(src[4:]) ^ ks[1]
	r1 := binary.BigEndian.Uint32(src[8:]) ^ ks[2]
	r2 := binary.BigEndian.Uint32(src[12:]) ^ ks[3]
	ks = ks[4:]

	for r := 1; r <= c.rounds; r++ {
		l1, l2, r1, r2 = feistel(l1, l2, r1, r2, ks[0], ks[1])
		ks = ks[2:]

		if r%6 == 0 && r < c.rounds {
			l1, l2 = fl(l1, l2, ks[0], ks[1])
			r1, r2 = flInv(r1, r2, ks[2], ks[3])
			ks = ks[4:]
		}
	}

	r1 ^= ks[0]
	r2 ^= ks[1]
	l1 ^= ks[2]
	l2 ^= ks[3]

	binary.BigEndian.PutUint32(dst[0:], r1)
	binary.BigEndian.PutUint32(dst[4:], r2)
	binary.BigEndian.PutUint32(dst[8:], l1)
	binary.BigEndian.PutUint32(dst[12:], l2)
}

// Decrypt decrypts a single block.
func (c *Cipher) Decrypt(dst, src *[api.BlockSize]byte) {
	ks := c.subkeys[:c.numSubkeys()]
	off := len(ks) - 4

	r1 := binary.BigEndian.Uint32(src[0:]) ^ ks[off+0]
	r2 := binary.BigEndian.Uint32(src[4:]) ^ ks[off+1]
	l1 := binary.BigEndian.Uint32(src[8:]) ^ ks[off+2]
	l2 := binary.BigEndian.Uint32(src[12:]) ^ ks[off+3]

	for r := 1; r <= c.rounds; r++ {
		off -= 2
		r1, r2, l1, l2 = feistel(r1, r2, l1, l2, ks[off], ks[off+1])

		if r%6 == 0 && r < c.rounds {
			off -= 4
			r1, r2 = fl(r1, r2, ks[off+2], ks[off+3])
			l1, l2 = flInv(l1, l2, ks[off+0], ks[off+1])
		}
	}

	l1 ^= ks[0]
	l2 ^= ks[1]
	r1 ^= ks[2]
	r2 ^= ks[3]

	binary.BigEndian.PutUint32(dst[0:], l1)
	binary.BigEndian.PutUint32(dst[4:], l2)
	binary.BigEndian.PutUint32(dst[8:], r1)
	binary.BigEndian.PutUint32(dst[12:], r2)
}

var _ api.Instance = (*Cipher)(nil)
