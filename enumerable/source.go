package enumerable

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// keystreamSource is a math/rand/v2 Source backed by a ChaCha20 keystream.
// The key is the BLAKE2b-256 digest of the seed and the nonce is fixed, so
// the stream depends on the seed alone.
type keystreamSource struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	block  [8]byte
}

func newKeystreamSource(seed []byte) (*keystreamSource, error) {
	key := blake2b.Sum256(seed)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &keystreamSource{cipher: c}, nil
}

// Uint64 implements rand.Source.
func (s *keystreamSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.block[:])
	s.cipher.XORKeyStream(s.block[:], s.block[:])
	return binary.LittleEndian.Uint64(s.block[:])
}
