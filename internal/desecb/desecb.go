// Package desecb implements the message layer of the ECDH exercise: a 56-bit
// shared x-coordinate becomes a DES key, and messages are DES-ECB with PKCS#5
// padding, hex encoded.
package desecb

import (
	"bytes"
	"crypto/des"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

var (
	// ErrKeyOverflow is returned when the shared x-coordinate needs more than
	// 56 bits.
	ErrKeyOverflow = errors.New("key material exceeds 56 bits")

	// ErrDecryption is returned for malformed hex, bad block lengths, bad
	// padding and non UTF-8 plaintexts.
	ErrDecryption = errors.New("decryption failed")
)

const keyBits = 56

// PackKey turns x into an 8-byte DES key: x is written as 56 bits, big-endian,
// and a 1 bit is appended after every 7 bits.
func PackKey(x *big.Int) ([]byte, error) {
	if x == nil || x.Sign() < 0 || x.BitLen() > keyBits {
		return nil, fmt.Errorf("%w: x=%v", ErrKeyOverflow, x)
	}

	key := make([]byte, des.BlockSize)
	for i := range key {
		// Bits 55-7i .. 49-7i of x, followed by the parity slot.
		var septet byte
		for j := 0; j < 7; j++ {
			septet = septet<<1 | byte(x.Bit(keyBits-1-7*i-j))
		}
		key[i] = septet<<1 | 1
	}
	return key, nil
}

// Decrypt decrypts a hex DES-ECB ciphertext under key and removes the PKCS#5
// padding. The plaintext must be valid UTF-8.
func Decrypt(key []byte, ciphertextHex string) (string, error) {
	block, err := des.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	ciphertext, err := hex.DecodeString(strings.TrimSpace(ciphertextHex))
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not hex: %w", ErrDecryption, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%des.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d", ErrDecryption, len(ciphertext), des.BlockSize)
	}

	plain := make([]byte, len(ciphertext))
	for off := 0; off < len(ciphertext); off += des.BlockSize {
		block.Decrypt(plain[off:off+des.BlockSize], ciphertext[off:off+des.BlockSize])
	}

	plain, err = unpad(plain)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryption)
	}
	return string(plain), nil
}

// Encrypt pads plaintext with PKCS#5, encrypts it with DES-ECB and returns the
// hex ciphertext.
func Encrypt(key []byte, plaintext string) (string, error) {
	block, err := des.NewCipher(key)
	if err != nil {
		return "", err
	}

	padLen := des.BlockSize - len(plaintext)%des.BlockSize
	buf := append([]byte(plaintext), bytes.Repeat([]byte{byte(padLen)}, padLen)...)
	for off := 0; off < len(buf); off += des.BlockSize {
		block.Encrypt(buf[off:off+des.BlockSize], buf[off:off+des.BlockSize])
	}
	return hex.EncodeToString(buf), nil
}

func unpad(buf []byte) ([]byte, error) {
	padLen := int(buf[len(buf)-1])
	if padLen == 0 || padLen > des.BlockSize {
		return nil, fmt.Errorf("%w: bad padding length %d", ErrDecryption, padLen)
	}
	for _, b := range buf[len(buf)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent padding", ErrDecryption)
		}
	}
	return buf[:len(buf)-padLen], nil
}

// Cipher decrypts with the key packed from a shared x-coordinate. It
// satisfies ecdh.Decrypter.
type Cipher struct{}

// Decrypt packs sharedX into a key and decrypts ciphertextHex with it.
func (Cipher) Decrypt(sharedX *big.Int, ciphertextHex string) (string, error) {
	key, err := PackKey(sharedX)
	if err != nil {
		return "", err
	}
	return Decrypt(key, ciphertextHex)
}
