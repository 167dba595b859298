package hash

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// BlockSize is the SHA-256 block size in bytes.
	BlockSize = 64

	// lengthFieldSize is the width of the trailing bit-length field.
	lengthFieldSize = 8
)

// Block is one 512-bit message block as sixteen big-endian words.
type Block [16]uint32

// PadAndParse pads message per FIPS 180-4 and splits the result into blocks.
// The message is copied; the caller's slice is never modified.
func PadAndParse(message []byte) []Block {
	padded := pad(message)
	blocks := make([]Block, len(padded)/BlockSize)
	for i := range blocks {
		chunk := padded[i*BlockSize : (i+1)*BlockSize]
		for j := range blocks[i] {
			blocks[i][j] = binary.BigEndian.Uint32(chunk[j*4:])
		}
	}
	return blocks
}

// BlockCount returns how many blocks PadAndParse emits for a message of n bytes.
func BlockCount(n int) int {
	bits := uint64(n)*8 + 65
	return int((bits + 511) / 512)
}

func pad(message []byte) []byte {
	messageBits := uint64(len(message)) * 8
	lastBlockBits := messageBits % 512

	// The delimiter bit and the length field must share the last block.
	// Past bit 447 they no longer fit, so the padding spills into a new block.
	var zeroBits uint64
	if lastBlockBits > 447 {
		zeroBits = 1024 - lastBlockBits - 65
	} else {
		zeroBits = 512 - lastBlockBits - 65
	}

	// 0x80 carries the delimiter and the first seven zero bits.
	zeroBytes := (zeroBits - 7) / 8
	padded := make([]byte, 0, uint64(len(message))+1+zeroBytes+lengthFieldSize)
	padded = append(padded, message...)
	padded = append(padded, 0x80)
	padded = append(padded, make([]byte, zeroBytes)...)
	padded = binary.BigEndian.AppendUint64(padded, messageBits)
	return padded
}

// Format renders the block one word per line in grouped binary.
func (b Block) Format() string {
	var sb strings.Builder
	for i, word := range b {
		fmt.Fprintf(&sb, "Word %2d: %08b %08b %08b %08b\n", i, byte(word>>24), byte(word>>16), byte(word>>8), byte(word))
	}
	return sb.String()
}
