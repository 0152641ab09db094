// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package blockcipher implements the AES and Camellia block ciphers behind a
// common algorithm descriptor, so that mode of operation code can select a
// cipher at runtime.
package blockcipher

import (
	"crypto/cipher"
	"errors"
	"strconv"
	"strings"

	"gitlab.com/yawning/slice.git"

	"gitlab.com/yawning/blockcipher.git/internal/aes"
	"gitlab.com/yawning/blockcipher.git/internal/api"
	"gitlab.com/yawning/blockcipher.git/internal/camellia"
	"gitlab.com/yawning/blockcipher.git/internal/hardware"
)

// BlockSize is the block size in bytes of every supported algorithm.
const BlockSize = api.BlockSize

var (
	// ErrInvalidKeyLength is the error returned when the key length is
	// not one of 16, 24 or 32 bytes.
	ErrInvalidKeyLength = api.ErrInvalidKeyLength

	// ErrInvalidBlockSize is the panic value used when a block is shorter
	// than BlockSize.
	ErrInvalidBlockSize = errors.New("blockcipher: input not full block")

	// ErrUnknownAlgorithm is the error returned when looking up an
	// algorithm that is not registered.
	ErrUnknownAlgorithm = errors.New("blockcipher: unknown algorithm")

	// ErrNoImplementations is the error returned when there are no working
	// implementations of an algorithm.
	ErrNoImplementations = errors.New("blockcipher: no working implementations")

	aesAlgorithm = &algorithm{
		name:               "AES",
		supportedFactories: []api.Factory{aes.Factory},
	}
	camelliaAlgorithm = &algorithm{
		name:               "CAMELLIA",
		supportedFactories: []api.Factory{camellia.Factory},
	}

	// AES is the AES (FIPS-197) algorithm descriptor.
	AES Algorithm = aesAlgorithm

	// Camellia is the Camellia (RFC 3713) algorithm descriptor.
	Camellia Algorithm = camelliaAlgorithm

	registry = []*algorithm{aesAlgorithm, camelliaAlgorithm}
)

// KeySizeError is the error returned when a key has an unsupported length.
// It matches ErrInvalidKeyLength with errors.Is.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "blockcipher: invalid key length " + strconv.Itoa(int(k))
}

// Is returns true iff target is ErrInvalidKeyLength.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// Algorithm is a block cipher algorithm descriptor.
type Algorithm interface {
	// Name returns the algorithm name.
	Name() string

	// Implementation returns the name of the implementation in use.
	Implementation() string

	// ContextSize returns the size of a keyed Block's state in bytes.
	ContextSize() int

	// BlockSize returns the algorithm block size in bytes.
	BlockSize() int

	// New expands key into a new keyed Block.
	New(key []byte) (Block, error)
}

// Block is a keyed block cipher instance.  Apart from Reset, all methods
// are safe for concurrent use.
type Block interface {
	cipher.Block

	// Reset attempts to clear the instance of sensitive data.  The Block
	// must not be used afterwards.
	Reset()

	// AppendEncrypt encrypts the single block src and appends the
	// result to dst, returning the updated slice.
	AppendEncrypt(dst, src []byte) []byte

	// AppendDecrypt decrypts the single block src and appends the
	// result to dst, returning the updated slice.
	AppendDecrypt(dst, src []byte) []byte
}

type algorithm struct {
	name string

	chosenFactory      api.Factory
	supportedFactories []api.Factory
}

func (alg *algorithm) Name() string {
	return alg.name
}

func (alg *algorithm) Implementation() string {
	if alg.chosenFactory == nil {
		return ""
	}
	return alg.chosenFactory.Name()
}

func (alg *algorithm) ContextSize() int {
	if alg.chosenFactory == nil {
		return 0
	}
	return alg.chosenFactory.ContextSize()
}

func (alg *algorithm) BlockSize() int {
	return BlockSize
}

func (alg *algorithm) New(key []byte) (Block, error) {
	if alg.chosenFactory == nil {
		return nil, ErrNoImplementations
	}
	if !api.IsValidKeyLength(len(key)) {
		return nil, KeySizeError(len(key))
	}

	inner, err := alg.chosenFactory.New(key)
	if err != nil {
		return nil, err
	}

	return &blockInstance{
		inner: inner,
	}, nil
}

type blockInstance struct {
	inner api.Instance
}

func (b *blockInstance) BlockSize() int {
	return BlockSize
}

func (b *blockInstance) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	b.inner.Encrypt((*[BlockSize]byte)(dst[:BlockSize]), (*[BlockSize]byte)(src[:BlockSize]))
}

func (b *blockInstance) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	b.inner.Decrypt((*[BlockSize]byte)(dst[:BlockSize]), (*[BlockSize]byte)(src[:BlockSize]))
}

func (b *blockInstance) AppendEncrypt(dst, src []byte) []byte {
	ret, out := slice.ForAppend(dst, BlockSize)
	b.Encrypt(out, src)

	return ret
}

func (b *blockInstance) AppendDecrypt(dst, src []byte) []byte {
	ret, out := slice.ForAppend(dst, BlockSize)
	b.Decrypt(out, src)

	return ret
}

func (b *blockInstance) Reset() {
	b.inner.Reset()
}

// Lookup returns the algorithm descriptor with the given name, ignoring
// case.
func Lookup(name string) (Algorithm, error) {
	for _, alg := range registry {
		if strings.EqualFold(alg.name, name) {
			return alg, nil
		}
	}

	return nil, ErrUnknownAlgorithm
}

// Algorithms returns every registered algorithm descriptor.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(registry))
	for _, alg := range registry {
		algs = append(algs, alg)
	}

	return algs
}

// NewCipher creates a new keyed Block for the named algorithm.
func NewCipher(name string, key []byte) (Block, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return alg.New(key)
}

func checkBlocks(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic(ErrInvalidBlockSize)
	}
}

func init() {
	if hardware.AESFactory != nil {
		aesAlgorithm.supportedFactories = append([]api.Factory{hardware.AESFactory}, aesAlgorithm.supportedFactories...)
	}

	for _, alg := range registry {
		if len(alg.supportedFactories) > 0 {
			alg.chosenFactory = alg.supportedFactories[0]
		}
	}
}
