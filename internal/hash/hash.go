// Package hash implements the SHA-256 digest from FIPS 180-4.
//
// A digest is computed in one call over a complete message: the message is
// padded and split into 512-bit blocks, then the blocks are folded through
// the compression function. All working state lives on the stack of the
// call, so every function here is safe for concurrent use.
package hash

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Size is the digest length in bytes.
const Size = 32

// ErrInvalidDigest reports a digest string that is not 64 hex characters.
var ErrInvalidDigest = errors.New("invalid digest")

// Digest is a 256-bit SHA-256 output.
type Digest [Size]byte

// Hash returns the lowercase hex SHA-256 digest of message.
func Hash(message []byte) string {
	return Sum(message).String()
}

// Sum returns the SHA-256 digest of message.
func Sum(message []byte) Digest {
	return Compute(PadAndParse(message))
}

// SumAll hashes each message concurrently and returns the digests in input
// order. Cancellation is checked before each message is started.
func SumAll(ctx context.Context, messages [][]byte) ([]Digest, error) {
	digests := make([]Digest, len(messages))
	group, ctx := errgroup.WithContext(ctx)
	for i := range messages {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("hash message %d: %w", i, err)
			}
			digests[i] = Sum(messages[i])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}

// String returns the canonical lowercase hex encoding.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// ParseDigest decodes a 64-character hex string. Either letter case is accepted.
func ParseDigest(s string) (Digest, error) {
	var digest Digest
	if len(s) != hex.EncodedLen(Size) {
		return digest, fmt.Errorf("digest is %d characters, want %d: %w", len(s), hex.EncodedLen(Size), ErrInvalidDigest)
	}
	if _, err := hex.Decode(digest[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("decode digest: %v: %w", err, ErrInvalidDigest)
	}
	return digest, nil
}
