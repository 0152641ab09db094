// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package aes

import (
	"gitlab.com/yawning/blockcipher.git/internal/api"
	"gitlab.com/yawning/blockcipher.git/internal/tables"
)

// state is the 4x4 AES state, stored column major so that byte i of the
// block is state[i] (row i%4, column i/4).
type state [api.BlockSize]byte

func (s *state) addRoundKey(k []uint32) {
	for c := 0; c < 4; c++ {
		w := k[c]
		s[4*c+0] ^= byte(w >> 24)
		s[4*c+1] ^= byte(w >> 16)
		s[4*c+2] ^= byte(w >> 8)
		s[4*c+3] ^= byte(w)
	}
}

func (s *state) subBytes() {
	for i := range s {
		s[i] = tables.Sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = tables.InvSbox[s[i]]
	}
}

func (s *state) shiftRows() {
	// Row 1: left by 1.
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]

	// Row 2: left by 2.
	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]

	// Row 3: left by 3.
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func (s *state) invShiftRows() {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]

	s[2], s[10] = s[10], s[2]
	s[6], s[14] = s[14], s[6]

	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

func (s *state) mixColumns() {
	mul2 := &tables.Mul2
	for i := 0; i < api.BlockSize; i += 4 {
		b0, b1, b2, b3 := s[i], s[i+1], s[i+2], s[i+3]
		p := b0 ^ b1 ^ b2 ^ b3
		s[i+0] = p ^ b0 ^ mul2[b0^b1]
		s[i+1] = p ^ b1 ^ mul2[b1^b2]
		s[i+2] = p ^ b2 ^ mul2[b2^b3]
		s[i+3] = p ^ b3 ^ mul2[b3^b0]
	}
}

func (s *state) invMixColumns() {
	mul2 := &tables.Mul2
	for i := 0; i < api.BlockSize; i += 4 {
		b0, b1, b2, b3 := s[i], s[i+1], s[i+2], s[i+3]

		// q = {09}(b0^b1^b2^b3)
		q := b0 ^ b1 ^ b2 ^ b3
		q ^= mul2[mul2[mul2[q]]]

		p := q ^ mul2[mul2[b0^b2]]
		q ^= mul2[mul2[b1^b3]]

		s[i+0] = p ^ b0 ^ mul2[b0^b1]
		s[i+1] = q ^ b1 ^ mul2[b1^b2]
		s[i+2] = p ^ b2 ^ mul2[b2^b3]
		s[i+3] = q ^ b3 ^ mul2[b3^b0]
	}
}

func (s *state) clear() {
	for i := range s {
		s[i] = 0
	}
}
