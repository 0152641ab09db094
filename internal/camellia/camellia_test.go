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

package camellia

import (
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

func TestVectors(t *testing.T) {
	require := require.New(t)

	// RFC 3713 Appendix A.
	pt := mustUnhex(t, "0123456789abcdeffedcba9876543210")
	for _, v := range []struct {
		key    string
		ct     string
		rounds int
	}{
		{"0123456789abcdeffedcba9876543210", "67673138549669730857065648eabe43", 18},
		{"0123456789abcdeffedcba98765432100011223344556677", "b4993401b3e996f84ee5cee7d79b09b9", 24},
		{"0123456789abcdeffedcba987654321000112233445566778899aabbccddeeff", "9acc237dff16d76c20ef7c919e3a7509", 24},
	} {
		key := mustUnhex(t, v.key)
		c, err := New(key)
		require.NoError(err, "New(%d)", len(key))
		require.Equal(v.rounds, c.Rounds(), "Rounds(%d)", len(key))

		var src, dst [api.BlockSize]byte
		copy(src[:], pt)
		c.Encrypt(&dst, &src)
		require.Equal(v.ct, hex.EncodeToString(dst[:]), "Encrypt(%d)", len(key))

		c.Decrypt(&dst, &dst)
		require.Equal(src, dst, "Decrypt(%d) - in place", len(key))
	}
}

func TestKeySchedule(t *testing.T) {
	require := require.New(t)

	key := mustUnhex(t, "0123456789abcdeffedcba9876543210")
	c, err := New(key)
	require.NoError(err, "New()")

	kl, kr, ka, _ := c.KeyMaterial()
	require.Equal([4]uint32{0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210}, kl, "KL")
	require.Equal([4]uint32{}, kr, "KR - 128-bit key")
	require.Equal([4]uint32{0xae71c3d5, 0x5ba6bf1d, 0x169240a7, 0x95f89256}, ka, "KA")

	sk := c.Subkeys()
	require.Len(sk, 52, "Subkeys() - 128-bit key")
	require.Equal([]uint32{0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210, 0xae71c3d5, 0x5ba6bf1d}, sk[:6], "Subkeys() - kw1, kw2, k1")
	require.Equal([]uint32{0x492b5738, 0xe1eaadd3, 0x5f8e8b49, 0x2053cafc}, sk[48:], "Subkeys() - kw3, kw4")

	c2, err := New(key)
	require.NoError(err, "New() - again")
	require.Equal(sk, c2.Subkeys(), "Subkeys() - deterministic")

	for _, l := range []int{24, 32} {
		c, err = New(make([]byte, l))
		require.NoError(err, "New(%d)", l)
		require.Len(c.Subkeys(), 68, "Subkeys(%d)", l)
	}
}

func TestKey192(t *testing.T) {
	key := mustUnhex(t, "0123456789abcdeffedcba98765432100011223344556677")
	c, err := New(key)
	require.NoError(t, err, "New()")

	_, kr, _, _ := c.KeyMaterial()
	require.Equal(t, [4]uint32{0x00112233, 0x44556677, 0xffeeddcc, 0xbbaa9988}, kr, "KR - 192-bit key")
	require.Equal(t, ^kr[0], kr[2], "KR - complemented")
	require.Equal(t, ^kr[1], kr[3], "KR - complemented")
}

func TestScheduleTables(t *testing.T) {
	for _, v := range []struct {
		name    string
		entries []subkeyEntry
		words   int
	}{
		{"128", schedule128[:], 52},
		{"256", schedule256[:], 68},
	} {
		seen := make([]bool, v.words)
		for _, e := range v.entries {
			for _, idx := range []int{e.index, e.index + 1} {
				require.False(t, seen[idx], "schedule%s - index %d duplicated", v.name, idx)
				seen[idx] = true
			}
			require.Contains(t, []uint{halfL, halfR}, e.half, "schedule%s - half selector", v.name)
		}
		for idx, ok := range seen {
			require.True(t, ok, "schedule%s - index %d missing", v.name, idx)
		}
	}
}

func TestFL(t *testing.T) {
	rng := rand.New(rand.NewSource(3713))
	for i := 0; i < 1000; i++ {
		xl, xr, kl, kr := rng.Uint32(), rng.Uint32(), rng.Uint32(), rng.Uint32()

		yl, yr := fl(xl, xr, kl, kr)
		zl, zr := flInv(yl, yr, kl, kr)
		require.Equal(t, xl, zl, "flInv(fl()) - left")
		require.Equal(t, xr, zr, "flInv(fl()) - right")
	}
}

func TestInvalidKeyLength(t *testing.T) {
	for _, l := range []int{0, 8, 15, 17, 20, 23, 25, 31, 33, 48} {
		c, err := New(make([]byte, l))
		require.Nil(t, c, "New(%d)", l)
		require.Equal(t, api.ErrInvalidKeyLength, err, "New(%d)", l)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	for _, l := range []int{16, 24, 32} {
		for i := 0; i < 200; i++ {
			key := make([]byte, l)
			_, _ = rng.Read(key)
			c, err := New(key)
			require.NoError(t, err, "New(%d)", l)

			var src, ct, pt [api.BlockSize]byte
			_, _ = rng.Read(src[:])
			c.Encrypt(&ct, &src)
			require.NotEqual(t, src, ct, "Encrypt(%d)", l)
			c.Decrypt(&pt, &ct)
			require.Equal(t, src, pt, "Decrypt(%d)", l)
		}
	}
}

func TestReset(t *testing.T) {
	c, err := New(make([]byte, 24))
	require.NoError(t, err, "New()")

	c.Reset()
	for _, w := range c.Subkeys() {
		require.Zero(t, w, "Reset() - subkeys")
	}
	kl, kr, ka, kb := c.KeyMaterial()
	for _, q := range [][4]uint32{kl, kr, ka, kb} {
		require.Equal(t, [4]uint32{}, q, "Reset() - key material")
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
