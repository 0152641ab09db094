// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package vectors loads and checks block cipher known answer test vectors.
package vectors

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a vector file encoding.
type Format int

const (
	// FormatJSON is a JSON array of vectors.
	FormatJSON Format = iota

	// FormatYAML is a YAML sequence of vectors.
	FormatYAML
)

var (
	// ErrCiphertextMismatch is the error returned when encryption does
	// not produce the expected ciphertext.
	ErrCiphertextMismatch = errors.New("vectors: ciphertext mismatch")

	// ErrPlaintextMismatch is the error returned when decryption does not
	// produce the expected plaintext.
	ErrPlaintextMismatch = errors.New("vectors: plaintext mismatch")

	// ErrMalformed is the error returned when a vector's fields are not
	// whole blocks.
	ErrMalformed = errors.New("vectors: malformed vector")
)

// Vector is a single block known answer test vector.
type Vector struct {
	Algorithm  string
	Comment    string
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

type hexVector struct {
	Algorithm  string `json:"algorithm" yaml:"algorithm"`
	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Key        string `json:"key" yaml:"key"`
	Plaintext  string `json:"plaintext" yaml:"plaintext"`
	Ciphertext string `json:"ciphertext" yaml:"ciphertext"`
}

// FormatForPath returns the Format implied by a file name's extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the vector file at path.
func Load(path string) ([]*Vector, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b, FormatForPath(path))
}

// Parse decodes vectors from b.
func Parse(b []byte, format Format) ([]*Vector, error) {
	var (
		hexVectors []*hexVector
		err        error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(b, &hexVectors)
	default:
		err = json.Unmarshal(b, &hexVectors)
	}
	if err != nil {
		return nil, err
	}

	vectors := make([]*Vector, 0, len(hexVectors))
	for i, v := range hexVectors {
		var fields [3][]byte
		for j, s := range []string{v.Key, v.Plaintext, v.Ciphertext} {
			if fields[j], err = hex.DecodeString(s); err != nil {
				return nil, fmt.Errorf("vectors: entry %d: %w", i, err)
			}
		}
		vectors = append(vectors, &Vector{
			Algorithm:  v.Algorithm,
			Comment:    v.Comment,
			Key:        fields[0],
			Plaintext:  fields[1],
			Ciphertext: fields[2],
		})
	}

	return vectors, nil
}

// Check encrypts and decrypts v with b, which must be keyed with v.Key.
// The plaintext and ciphertext may span multiple blocks, which are
// processed independently.
func Check(b cipher.Block, v *Vector) error {
	bs := b.BlockSize()
	if len(v.Plaintext) == 0 || len(v.Plaintext)%bs != 0 || len(v.Plaintext) != len(v.Ciphertext) {
		return ErrMalformed
	}

	out := make([]byte, len(v.Plaintext))
	for off := 0; off < len(out); off += bs {
		b.Encrypt(out[off:], v.Plaintext[off:])
	}
	if !bytes.Equal(out, v.Ciphertext) {
		return fmt.Errorf("%w: got %x, want %x", ErrCiphertextMismatch, out, v.Ciphertext)
	}

	for off := 0; off < len(out); off += bs {
		b.Decrypt(out[off:], v.Ciphertext[off:])
	}
	if !bytes.Equal(out, v.Plaintext) {
		return fmt.Errorf("%w: got %x, want %x", ErrPlaintextMismatch, out, v.Plaintext)
	}

	return nil
}
