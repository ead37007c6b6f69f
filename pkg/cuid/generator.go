package cuid

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/getmockd/cuid2/pkg/base36"
	"github.com/getmockd/cuid2/pkg/logging"
)

const (
	// DefaultLength is the identifier length used when Config.Length is zero.
	DefaultLength = 25

	// MinLength and BigLength bound the identifier length.
	MinLength = 2
	BigLength = 32

	// InitialCountMax scales the random counter seed. About 22,000 generators
	// are needed before two of them have a 50% chance of starting at the same
	// counter value.
	InitialCountMax = 476782367
)

// Config configures a Generator. Zero fields take their defaults.
type Config struct {
	// Random supplies entropy. Defaults to crypto/rand.Reader.
	// Generate reads it from every calling goroutine, so a Generator shared
	// between goroutines needs a Random that is safe for concurrent use.
	// bytes.Reader and math/rand sources are not; wrap them in a lock.
	Random io.Reader

	// Counter supplies the per-identifier sequence. Defaults to an
	// AtomicCounter seeded from Random.
	Counter Counter

	// Length of generated identifiers, in [MinLength, BigLength].
	// Defaults to DefaultLength.
	Length int

	// Fingerprint identifies this process. When empty it is computed from
	// Identity.
	Fingerprint string

	// Identity feeds the computed fingerprint. Defaults to EnvironmentSource.
	Identity IdentitySource

	// Hash is the digest applied to each identifier's inputs. Defaults to SHA3.
	Hash HashFunc

	// Clock defaults to time.Now.
	Clock func() time.Time

	// Logger defaults to a no-op logger.
	Logger *slog.Logger
}

// Generator produces identifiers of a fixed length.
type Generator struct {
	random      io.Reader
	counter     Counter
	length      int
	fingerprint string
	hash        HashFunc
	clock       func() time.Time
}

// New validates cfg, fills in its defaults and returns a ready Generator.
func New(cfg Config) (*Generator, error) {
	if cfg.Length == 0 {
		cfg.Length = DefaultLength
	}
	if err := checkLength(cfg.Length); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	g := &Generator{
		random:      cfg.Random,
		counter:     cfg.Counter,
		length:      cfg.Length,
		fingerprint: cfg.Fingerprint,
		hash:        cfg.Hash,
		clock:       cfg.Clock,
	}
	if g.random == nil {
		g.random = rand.Reader
	}
	if g.hash == nil {
		g.hash = SHA3
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.counter == nil {
		seed, err := randomUint32(g.random)
		if err != nil {
			return nil, err
		}
		g.counter = NewCounter(uint64(seed) * InitialCountMax)
	}

	fingerprintSource := "config"
	if g.fingerprint == "" {
		fp, err := createFingerprint(g.random, cfg.Identity, g.hash)
		if err != nil {
			return nil, err
		}
		g.fingerprint = fp
		fingerprintSource = "identity"
	}

	logger.Debug("cuid generator initialized",
		"length", g.length,
		"fingerprint_source", fingerprintSource,
	)
	return g, nil
}

// Init returns a function that generates one identifier per call using cfg.
func Init(cfg Config) (func() string, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate, nil
}

// Length returns the length of the identifiers g produces.
func (g *Generator) Length() int { return g.length }

// Fingerprint returns the fingerprint mixed into every identifier.
func (g *Generator) Fingerprint() string { return g.fingerprint }

// Generate returns a new identifier. It panics if the random source fails,
// since no identifier can be produced without entropy.
func (g *Generator) Generate() string {
	first, err := randomLetter(g.random)
	if err != nil {
		panic(fmt.Errorf("cuid: %w", err))
	}

	ts := base36.EncodeUint64(uint64(g.clock().UTC().UnixNano()))
	count := base36.EncodeUint64(g.counter.Next())

	// Salt length tracks the identifier length.
	salt, err := CreateEntropy(g.length, g.random)
	if err != nil {
		panic(fmt.Errorf("cuid: %w", err))
	}

	hashed := padLeft(hashString(g.hash, ts+salt+count+g.fingerprint), g.length-1)

	buf := make([]byte, 0, g.length)
	buf = append(buf, first)
	buf = append(buf, hashed[:g.length-1]...)
	return string(buf)
}

// withLength returns a copy of g that shares its state but emits identifiers
// of a different length.
func (g *Generator) withLength(length int) *Generator {
	c := *g
	c.length = length
	return &c
}
