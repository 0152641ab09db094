// Copryright (C) 2019 Yawning Angel
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package aes

import (
	stdaes "crypto/aes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/yawning/blockcipher.git/internal/api"
)

func mustUnhex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err, "hex.DecodeString(%s)", s)
	return b
}

func TestKeySchedule(t *testing.T) {
	require := require.New(t)

	// FIPS-197 Appendix A.
	for _, v := range []struct {
		key         string
		rounds      int
		firstExpand uint32
		last        uint32
	}{
		{"2b7e151628aed2a6abf7158809cf4f3c", 10, 0xa0fafe17, 0xb6630ca6},
		{"8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b", 12, 0xfe0c91f7, 0x01002202},
		{"603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4", 14, 0x9ba35411, 0x706c631e},
	} {
		key := mustUnhex(t, v.key)
		c, err := New(key)
		require.NoError(err, "New(%d)", len(key))
		require.Equal(v.rounds, c.Rounds(), "Rounds(%d)", len(key))

		w := c.RoundKeys()
		require.Len(w, 4*(v.rounds+1), "RoundKeys(%d) - length", len(key))
		require.Equal(v.firstExpand, w[len(key)/4], "RoundKeys(%d) - first expanded word", len(key))
		require.Equal(v.last, w[len(w)-1], "RoundKeys(%d) - last word", len(key))

		// Determinism.
		c2, err := New(key)
		require.NoError(err, "New(%d) - again", len(key))
		require.Equal(w, c2.RoundKeys(), "RoundKeys(%d) - deterministic", len(key))
	}
}

func TestInvalidKeyLength(t *testing.T) {
	for _, l := range []int{0, 1, 15, 17, 20, 23, 25, 31, 33, 64} {
		c, err := New(make([]byte, l))
		require.Nil(t, c, "New(%d)", l)
		require.Equal(t, api.ErrInvalidKeyLength, err, "New(%d)", l)
	}
}

func TestTransforms(t *testing.T) {
	require := require.New(t)

	// FIPS-197 5.1.3 / the usual MixColumns column examples.
	s := state{
		0xdb, 0x13, 0x53, 0x45,
		0xf2, 0x0a, 0x22, 0x5c,
		0x01, 0x01, 0x01, 0x01,
		0xc6, 0xc6, 0xc6, 0xc6,
	}
	s.mixColumns()
	require.Equal(state{
		0x8e, 0x4d, 0xa1, 0xbc,
		0x9f, 0xdc, 0x58, 0x9d,
		0x01, 0x01, 0x01, 0x01,
		0xc6, 0xc6, 0xc6, 0xc6,
	}, s, "mixColumns()")

	rng := rand.New(rand.NewSource(197))
	for i := 0; i < 1000; i++ {
		var orig state
		_, _ = rng.Read(orig[:])

		s = orig
		s.mixColumns()
		s.invMixColumns()
		require.Equal(orig, s, "invMixColumns(mixColumns())")

		s.shiftRows()
		s.invShiftRows()
		require.Equal(orig, s, "invShiftRows(shiftRows())")

		s.subBytes()
		s.invSubBytes()
		require.Equal(orig, s, "invSubBytes(subBytes())")
	}

	s = state{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	s.shiftRows()
	require.Equal(state{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}, s, "shiftRows()")
}

func TestMatchesRuntime(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(4))
	for _, l := range []int{16, 24, 32} {
		for i := 0; i < 100; i++ {
			key := make([]byte, l)
			_, _ = rng.Read(key)

			c, err := New(key)
			require.NoError(err, "New(%d)", l)
			ref, err := stdaes.NewCipher(key)
			require.NoError(err, "stdaes.NewCipher(%d)", l)

			var src, dst, expected [api.BlockSize]byte
			_, _ = rng.Read(src[:])

			c.Encrypt(&dst, &src)
			ref.Encrypt(expected[:], src[:])
			require.Equal(expected, dst, "Encrypt(%d)", l)

			c.Decrypt(&dst, &dst)
			require.Equal(src, dst, "Decrypt(%d) - in place", l)
		}
	}
}

func TestReset(t *testing.T) {
	c, err := New(make([]byte, 32))
	require.NoError(t, err, "New()")

	c.Reset()
	for _, w := range c.RoundKeys() {
		require.Zero(t, w, "Reset()")
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, _ := New(make([]byte, 16))
	var blk [api.BlockSize]byte

	b.SetBytes(api.BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(&blk, &blk)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	c, _ := New(make([]byte, 16))
	var blk [api.BlockSize]byte

	b.SetBytes(api.BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(&blk, &blk)
	}
}
