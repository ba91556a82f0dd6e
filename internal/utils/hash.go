// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters fixed for the lifetime of the stored hashes.
// Changing them would silently invalidate every password already persisted,
// so they are constants rather than configuration.
const (
	argonMemory      uint32 = 19456 // KiB, ~19 MiB
	argonTime        uint32 = 2
	argonParallelism uint8  = 1
	argonKeyLen      uint32 = 32
	argonSaltLen            = 16
)

// ErrMalformedHash is returned by VerifyPassword when the stored value is not
// a well-formed argon2id PHC string.
var ErrMalformedHash = errors.New("malformed argon2id hash")

// HashPassword derives an argon2id hash of password with a fresh random salt
// and returns it in PHC string format:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
//
// where salt and hash are standard base64 without padding.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonParallelism, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyPassword reports whether password matches the stored PHC-encoded
// argon2id hash. The parameters embedded in the stored value are honoured, so
// hashes created before any future parameter change keep verifying.
//
// The comparison of the derived key is constant time.
func VerifyPassword(encodedHash, password string) (bool, error) {
	memory, time, parallelism, salt, hash, err := decodeArgon2idHash(encodedHash)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(password), salt, time, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, derived) == 1, nil
}

// decodeArgon2idHash splits a PHC argon2id string into its parameters, salt
// and derived key.
func decodeArgon2idHash(encodedHash string) (memory, time uint32, parallelism uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return memory, time, parallelism, salt, hash, nil
}
