// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package api provides the block cipher implementation abstract interface.
package api

import "errors"

// BlockSize is the block size in bytes shared by every supported cipher.
const BlockSize = 16

// ErrInvalidKeyLength is the error returned when the key length is not
// supported by an implementation.
var ErrInvalidKeyLength = errors.New("blockcipher: invalid key length")

// Factory is a Instance factory.
type Factory interface {
	// Name returns the name of the implementation.
	Name() string

	// ContextSize returns the size of a keyed instance's state in bytes.
	ContextSize() int

	// New constructs a new keyed instance.  Keys of 16, 24 and 32 bytes
	// are accepted, all other lengths return ErrInvalidKeyLength.
	New(key []byte) (Instance, error)
}

// Instance is a keyed block cipher instance.  An Instance is immutable
// after construction and may be used from multiple goroutines, except for
// Reset.
type Instance interface {
	// Reset attempts to clear the instance of sensitive data.
	Reset()

	// Encrypt encrypts a single block from src into dst.  dst and src
	// may alias.
	Encrypt(dst, src *[BlockSize]byte)

	// Decrypt decrypts a single block from src into dst.  dst and src
	// may alias.
	Decrypt(dst, src *[BlockSize]byte)
}

// IsValidKeyLength returns true iff the key length is one of 16, 24 or 32
// bytes.
func IsValidKeyLength(l int) bool {
	switch l {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}
