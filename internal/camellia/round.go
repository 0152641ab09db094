// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package camellia

import (
	"math/bits"

	"gitlab.com/yawning/blockcipher.git/internal/tables"
)

// feistel applies one round to the halves (l1, l2) and (r1, r2), returning
// the swapped halves.
func feistel(l1, l2, r1, r2, k1, k2 uint32) (uint32, uint32, uint32, uint32) {
	zl, zr := sFunc(l1^k1, l2^k2)
	zl, zr = pFunc(zl, zr)

	// pFunc leaves the high word of F's output in zr.
	return r1 ^ zr, r2 ^ zl, l1, l2
}

func sFunc(zl, zr uint32) (uint32, uint32) {
	zl = uint32(tables.CamelliaSbox1[zl>>24])<<24 |
		uint32(tables.CamelliaSbox2[byte(zl>>16)])<<16 |
		uint32(tables.CamelliaSbox3[byte(zl>>8)])<<8 |
		uint32(tables.CamelliaSbox4[byte(zl)])
	zr = uint32(tables.CamelliaSbox2[zr>>24])<<24 |
		uint32(tables.CamelliaSbox3[byte(zr>>16)])<<16 |
		uint32(tables.CamelliaSbox4[byte(zr>>8)])<<8 |
		uint32(tables.CamelliaSbox1[byte(zr)])
	return zl, zr
}

func pFunc(zl, zr uint32) (uint32, uint32) {
	zl ^= bits.RotateLeft32(zr, 8)
	zr ^= bits.RotateLeft32(zl, 16)
	zl ^= bits.RotateLeft32(zr, -8)
	zr ^= bits.RotateLeft32(zl, -8)
	return zl, zr
}

func fl(xl, xr, kl, kr uint32) (uint32, uint32) {
	xr ^= bits.RotateLeft32(xl&kl, 1)
	xl ^= xr | kr
	return xl, xr
}

func flInv(yl, yr, kl, kr uint32) (uint32, uint32) {
	yl ^= yr | kr
	yr ^= bits.RotateLeft32(yl&kl, 1)
	return yl, yr
}
