// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

//go:build (amd64 || arm64) && !noasm

package hardware

import (
	"crypto/aes"
	"crypto/cipher"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"

	"gitlab.com/yawning/blockcipher.git/internal/api"
)

type aesniFactory struct{}

func (f *aesniFactory) Name() string {
	if runtime.GOARCH == "arm64" {
		return "armv8"
	}
	return "aesni"
}

func (f *aesniFactory) ContextSize() int {
	// The runtime keeps both the encryption and decryption schedules.
	return int(unsafe.Sizeof(aesniInstance{})) + 2*4*(14+1)*4
}

func (f *aesniFactory) New(key []byte) (api.Instance, error) {
	if !api.IsValidKeyLength(len(key)) {
		return nil, api.ErrInvalidKeyLength
	}

	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, api.ErrInvalidKeyLength
	}

	return &aesniInstance{b: b}, nil
}

type aesniInstance struct {
	b cipher.Block
}

func (inst *aesniInstance) Reset() {
	// The runtime's key schedule is opaque, dropping the reference is
	// the best that can be done.
	inst.b = nil
}

func (inst *aesniInstance) Encrypt(dst, src *[api.BlockSize]byte) {
	inst.b.Encrypt(dst[:], src[:])
}

func (inst *aesniInstance) Decrypt(dst, src *[api.BlockSize]byte) {
	inst.b.Decrypt(dst[:], src[:])
}

func init() {
	if cpu.X86.HasAES || cpu.ARM64.HasAES {
		AESFactory = &aesniFactory{}
	}
}
