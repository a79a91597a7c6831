// Package memo prepares the optional transaction memo: either shell-quoted
// for literal passthrough, or encrypted to the Namesdao key and tagged as a
// registration memo.
package memo

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alessio/shellescape"
)

const (
	// RegisterTag marks an encrypted registration memo.
	RegisterTag = ":register:"
	// SaltSize is the number of random bytes appended before encryption.
	SaltSize = 20
)

// ErrNoEncrypter is returned when a cloaked memo is asked for without a key.
var ErrNoEncrypter = errors.New("memo encryption requested but no encrypter is configured")

// Encrypter encrypts to a fixed recipient and returns armored ciphertext.
type Encrypter interface {
	Encrypt(plaintext []byte) (string, error)
}

// Prepared is a memo ready to be passed as one argv entry.
type Prepared struct {
	Value    string
	Original string
	Cloaked  bool
}

// Preparer turns a user memo into the value passed to the wallet, encrypting
// it when asked to.
type Preparer struct {
	encrypter Encrypter
	salt      bool
	random    io.Reader
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithSalt toggles the random suffix that keeps two encryptions of the same
// memo from being recognisable as equal.
func WithSalt(salt bool) Option {
	return func(p *Preparer) {
		p.salt = salt
	}
}

// WithRandom sets the source of salt bytes.
func WithRandom(r io.Reader) Option {
	return func(p *Preparer) {
		p.random = r
	}
}

// NewPreparer returns a Preparer encrypting with enc. enc may be nil when
// memos are never cloaked.
func NewPreparer(enc Encrypter, opts ...Option) *Preparer {
	p := &Preparer{
		encrypter: enc,
		salt:      true,
		random:    rand.Reader,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare returns nil for an empty memo.
func (p *Preparer) Prepare(memo string, cloak bool) (*Prepared, error) {
	if memo == "" {
		return nil, nil
	}
	if !cloak {
		return &Prepared{
			Value:    shellescape.Quote(memo),
			Original: memo,
		}, nil
	}
	if p.encrypter == nil {
		return nil, ErrNoEncrypter
	}

	payload := []byte(memo)
	if p.salt {
		salt := make([]byte, SaltSize)
		if _, err := io.ReadFull(p.random, salt); err != nil {
			return nil, fmt.Errorf("couldn't read memo salt: %w", err)
		}
		payload = append(payload, ':')
		payload = append(payload, base64.StdEncoding.EncodeToString(salt)...)
	}

	ciphertext, err := p.encrypter.Encrypt(payload)
	if err != nil {
		return nil, fmt.Errorf("couldn't encrypt memo: %w", err)
	}
	return &Prepared{
		Value:    RegisterTag + Quote(ciphertext),
		Original: memo,
		Cloaked:  true,
	}, nil
}

const upperhex = "0123456789ABCDEF"

// Quote percent-encodes every byte except ASCII letters, digits, "_.-~"
// and "/".
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3 / 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~' || c == '/':
		return true
	}
	return false
}
