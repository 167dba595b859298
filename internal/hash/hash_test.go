package hash

import (
	"context"
	stdsha256 "crypto/sha256"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "empty",
			message: "",
			want:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:    "abc",
			message: "abc",
			want:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:    "hello world",
			message: "hello world",
			want:    "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:    "448 bit message spills into second block",
			message: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			want:    "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			name:    "896 bit message",
			message: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			want:    "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hash([]byte(tt.message)); got != tt.want {
				t.Fatalf("Hash(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long message in short mode")
	}
	message := []byte(strings.Repeat("a", 1_000_000))
	const want = "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"
	if got := Hash(message); got != want {
		t.Fatalf("Hash(1M a) = %s, want %s", got, want)
	}
}

func TestPaddingBoundaries(t *testing.T) {
	for _, n := range []int{55, 56, 63, 64, 119, 120} {
		message := []byte(strings.Repeat("a", n))
		want := Digest(stdsha256.Sum256(message))
		if got := Sum(message); got != want {
			t.Errorf("Sum(%d bytes) = %s, want %s", n, got, want)
		}
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	message := make([]byte, 300)
	for i := range message {
		message[i] = byte(i * 7)
	}
	for n := 0; n <= len(message); n++ {
		want := Digest(stdsha256.Sum256(message[:n]))
		if got := Sum(message[:n]); got != want {
			t.Fatalf("Sum(len %d) = %s, want %s", n, got, want)
		}
	}
}

func TestMatchesStandardLibraryLarge(t *testing.T) {
	message := make([]byte, 1<<20)
	for i := range message {
		message[i] = byte(i % 251)
	}
	want := Digest(stdsha256.Sum256(message))
	if got := Sum(message); got != want {
		t.Fatalf("Sum(1MiB) = %s, want %s", got, want)
	}
}

func TestHashIsFixedLength(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 64, 1000} {
		got := Hash(make([]byte, n))
		if len(got) != 64 {
			t.Errorf("len(Hash(%d bytes)) = %d, want 64", n, len(got))
		}
		if strings.ToLower(got) != got {
			t.Errorf("Hash(%d bytes) = %s, want lowercase", n, got)
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	message := []byte("determinism check")
	first := Hash(message)
	second := Hash(message)
	if first != second {
		t.Fatalf("Hash not deterministic: %s != %s", first, second)
	}
}

func TestHashConcurrent(t *testing.T) {
	messages := []string{"", "abc", "hello world", strings.Repeat("x", 200)}
	want := make([]string, len(messages))
	for i, message := range messages {
		want[i] = Hash([]byte(message))
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, message := range messages {
				if got := Hash([]byte(message)); got != want[i] {
					errs <- got
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Hash produced %s", got)
	}
}

func TestSingleByteChangeChangesDigest(t *testing.T) {
	if Hash([]byte("abc")) == Hash([]byte("abd")) {
		t.Fatal("abc and abd should produce different digests")
	}
}

func TestHashDoesNotModifyInput(t *testing.T) {
	message := make([]byte, 3, 128)
	copy(message, "abc")
	_ = Hash(message)
	if string(message) != "abc" {
		t.Fatalf("input modified: %q", message)
	}
	if extended := message[:4]; extended[3] != 0 {
		t.Fatalf("input backing array written past length: %x", extended[3])
	}
}

func TestSumAll(t *testing.T) {
	messages := [][]byte{[]byte("abc"), nil, []byte("hello world")}
	digests, err := SumAll(context.Background(), messages)
	if err != nil {
		t.Fatalf("SumAll: %v", err)
	}
	if len(digests) != len(messages) {
		t.Fatalf("SumAll returned %d digests, want %d", len(digests), len(messages))
	}
	for i, message := range messages {
		if want := Sum(message); digests[i] != want {
			t.Errorf("digest %d = %s, want %s", i, digests[i], want)
		}
	}
}

func TestSumAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SumAll(ctx, [][]byte{[]byte("abc")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("SumAll error = %v, want context.Canceled", err)
	}
}

func TestParseDigestRoundTrip(t *testing.T) {
	original := Sum([]byte("round-trip"))
	parsed, err := ParseDigest(original.String())
	if err != nil {
		t.Fatalf("ParseDigest: %v", err)
	}
	if parsed != original {
		t.Fatalf("ParseDigest round-trip failed: %s != %s", parsed, original)
	}

	upper, err := ParseDigest(strings.ToUpper(original.String()))
	if err != nil {
		t.Fatalf("ParseDigest(upper): %v", err)
	}
	if upper != original {
		t.Fatalf("ParseDigest(upper) = %s, want %s", upper, original)
	}
}

func TestParseDigestInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"abcd",
		strings.Repeat("z", 64),
		strings.Repeat("a", 66),
	} {
		if _, err := ParseDigest(input); !errors.Is(err, ErrInvalidDigest) {
			t.Errorf("ParseDigest(%q) error = %v, want ErrInvalidDigest", input, err)
		}
	}
}
