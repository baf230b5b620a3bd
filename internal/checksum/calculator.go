package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha3"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/guidodo/mdto/pkg/mdto"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "sha256"

var algorithms = map[string]func() hash.Hash{
	"md5":         md5.New,
	"sha1":        sha1.New,
	"sha224":      sha256.New224,
	"sha256":      sha256.New,
	"sha384":      sha512.New384,
	"sha512":      sha512.New,
	"sha512_224":  sha512.New512_224,
	"sha512_256":  sha512.New512_256,
	"sha3_224":    func() hash.Hash { return sha3.New224() },
	"sha3_256":    func() hash.Hash { return sha3.New256() },
	"sha3_384":    func() hash.Hash { return sha3.New384() },
	"sha3_512":    func() hash.Hash { return sha3.New512() },
	"blake2b":     mustBlake2b(blake2b.New512),
	"blake2b_256": mustBlake2b(blake2b.New256),
}

// blake2b constructors only fail for keys longer than 64 bytes.
func mustBlake2b(newFn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newFn(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// Algorithms lists the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name is a known algorithm. Names are
// case-insensitive and may use dashes in place of underscores.
func Supported(name string) bool {
	_, ok := algorithms[canonical(name)]
	return ok
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	// "sha_256" style input from the MDTO label form.
	if strings.HasPrefix(name, "sha_") {
		name = "sha" + strings.TrimPrefix(name, "sha_")
	}
	return name
}

var shaDigits = regexp.MustCompile(`SHA(\d+)`)

// NormalizeAlgorithm returns the label the MDTO begrippenlijst uses for an
// algorithm: upper case with a dash after SHA, so sha256 becomes SHA-256.
func NormalizeAlgorithm(name string) string {
	return shaDigits.ReplaceAllString(strings.ToUpper(name), "SHA-$1")
}

// Calculator computes checksum data groups for file content.
type Calculator interface {
	// Sum returns the lowercase hex digest of everything read from r.
	Sum(r io.Reader) (string, error)

	// Create returns a ChecksumGegevens for the content of r, dated now.
	Create(r io.Reader, now time.Time) (*mdto.Entity, error)
}

// Hasher implements Calculator for one algorithm.
// Hasher is safe for concurrent use by multiple goroutines.
type Hasher struct {
	name    string
	newHash func() hash.Hash
}

// New returns a Hasher for algorithm; an empty name selects DefaultAlgorithm.
func New(algorithm string) (Hasher, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	newHash, ok := algorithms[canonical(algorithm)]
	if !ok {
		return Hasher{}, fmt.Errorf("%w: %q (supported: %s)",
			mdto.ErrUnknownAlgorithm, algorithm, strings.Join(Algorithms(), ", "))
	}
	return Hasher{name: canonical(algorithm), newHash: newHash}, nil
}

// Algorithm returns the canonical algorithm name.
func (h Hasher) Algorithm() string {
	return h.name
}

// Label returns the begripLabel written for this algorithm.
func (h Hasher) Label() string {
	return NormalizeAlgorithm(h.name)
}

// Sum hashes r to EOF.
func (h Hasher) Sum(r io.Reader) (string, error) {
	digest := h.newHash()
	if _, err := io.Copy(digest, r); err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Create hashes r and returns the checksum data group.
func (h Hasher) Create(r io.Reader, now time.Time) (*mdto.Entity, error) {
	waarde, err := h.Sum(r)
	if err != nil {
		return nil, err
	}
	algoritme := mdto.NewBegrip(h.Label(), mdto.NewVerwijzing(mdto.ChecksumBegrippenlijst, nil), "")
	return mdto.NewChecksum(algoritme, waarde, now.Format(mdto.DateTimeLayout)), nil
}

// Sum hashes r with the named algorithm.
func Sum(r io.Reader, algorithm string) (string, error) {
	h, err := New(algorithm)
	if err != nil {
		return "", err
	}
	return h.Sum(r)
}

// Create hashes r with the named algorithm and returns a ChecksumGegevens.
func Create(r io.Reader, algorithm string, now time.Time) (*mdto.Entity, error) {
	h, err := New(algorithm)
	if err != nil {
		return nil, err
	}
	return h.Create(r, now)
}
