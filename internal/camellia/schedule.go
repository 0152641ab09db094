// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package camellia

// quad is a 128-bit key quantity as 4 big endian words.
type quad [4]uint32

func (q *quad) xor(o *quad) {
	q[0] ^= o[0]
	q[1] ^= o[1]
	q[2] ^= o[2]
	q[3] ^= o[3]
}

const (
	keyL = iota
	keyR
	keyA
	keyB
)

const (
	halfL = 0
	halfR = 64
)

// subkeyEntry describes one pair of subkey words: the source quantity is
// rotated left by rot+half bits and the leading 64 bits are written to
// index, index+1.
type subkeyEntry struct {
	index int
	src   int
	rot   uint
	half  uint
}

func (e *subkeyEntry) extract(k *quad, out []uint32) {
	n := (e.rot + e.half) / 32
	m := (e.rot + e.half) % 32

	if m == 0 {
		out[0] = k[n%4]
		out[1] = k[(n+1)%4]
		return
	}
	out[0] = k[n%4]<<m | k[(n+1)%4]>>(32-m)
	out[1] = k[(n+1)%4]<<m | k[(n+2)%4]>>(32-m)
}

var schedule128 = [26]subkeyEntry{
	{0, keyL, 0, halfL},    // kw1
	{2, keyL, 0, halfR},    // kw2
	{4, keyA, 0, halfL},    // k1
	{6, keyA, 0, halfR},    // k2
	{8, keyL, 15, halfL},   // k3
	{10, keyL, 15, halfR},  // k4
	{12, keyA, 15, halfL},  // k5
	{14, keyA, 15, halfR},  // k6
	{16, keyA, 30, halfL},  // ke1
	{18, keyA, 30, halfR},  // ke2
	{20, keyL, 45, halfL},  // k7
	{22, keyL, 45, halfR},  // k8
	{24, keyA, 45, halfL},  // k9
	{26, keyL, 60, halfR},  // k10
	{28, keyA, 60, halfL},  // k11
	{30, keyA, 60, halfR},  // k12
	{32, keyL, 77, halfL},  // ke3
	{34, keyL, 77, halfR},  // ke4
	{36, keyL, 94, halfL},  // k13
	{38, keyL, 94, halfR},  // k14
	{40, keyA, 94, halfL},  // k15
	{42, keyA, 94, halfR},  // k16
	{44, keyL, 111, halfL}, // k17
	{46, keyL, 111, halfR}, // k18
	{48, keyA, 111, halfL}, // kw3
	{50, keyA, 111, halfR}, // kw4
}

var schedule256 = [34]subkeyEntry{
	{0, keyL, 0, halfL},    // kw1
	{2, keyL, 0, halfR},    // kw2
	{4, keyB, 0, halfL},    // k1
	{6, keyB, 0, halfR},    // k2
	{8, keyR, 15, halfL},   // k3
	{10, keyR, 15, halfR},  // k4
	{12, keyA, 15, halfL},  // k5
	{14, keyA, 15, halfR},  // k6
	{16, keyR, 30, halfL},  // ke1
	{18, keyR, 30, halfR},  // ke2
	{20, keyB, 30, halfL},  // k7
	{22, keyB, 30, halfR},  // k8
	{24, keyL, 45, halfL},  // k9
	{26, keyL, 45, halfR},  // k10
	{28, keyA, 45, halfL},  // k11
	{30, keyA, 45, halfR},  // k12
	{32, keyL, 60, halfL},  // ke3
	{34, keyL, 60, halfR},  // ke4
	{36, keyR, 60, halfL},  // k13
	{38, keyR, 60, halfR},  // k14
	{40, keyB, 60, halfL},  // k15
	{42, keyB, 60, halfR},  // k16
	{44, keyL, 77, halfL},  // k17
	{46, keyL, 77, halfR},  // k18
	{48, keyA, 77, halfL},  // ke5
	{50, keyA, 77, halfR},  // ke6
	{52, keyR, 94, halfL},  // k19
	{54, keyR, 94, halfR},  // k20
	{56, keyA, 94, halfL},  // k21
	{58, keyA, 94, halfR},  // k22
	{60, keyL, 111, halfL}, // k23
	{62, keyL, 111, halfR}, // k24
	{64, keyB, 111, halfL}, // kw3
	{66, keyB, 111, halfR}, // kw4
}
