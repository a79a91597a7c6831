// Package pgp is the only place that touches OpenPGP. It encrypts memos to
// the Namesdao key and checks detached signatures published next to lookup
// records.
package pgp

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

// NamesdaoFingerprint identifies the Namesdao key inside NamesdaoPublicKey.
const NamesdaoFingerprint = "2A06D252B6B804C837E2BA2D2B3A61F48A54276C"

//go:embed keys/namesdao.asc
var NamesdaoPublicKey []byte

var ErrKeyNotFound = errors.New("public key not found")

// KeyCache is local storage for keys imported on a previous run.
type KeyCache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Keyring resolves one recipient key by fingerprint. The key is looked up in
// the cache first and imported from the armored block on first use.
type Keyring struct {
	fingerprint string
	armored     []byte
	cache       KeyCache

	once   sync.Once
	entity *openpgp.Entity
	err    error
}

func NewKeyring(fingerprint string, armored []byte, cache KeyCache) *Keyring {
	return &Keyring{
		fingerprint: normalizeFingerprint(fingerprint),
		armored:     armored,
		cache:       cache,
	}
}

// NewNamesdaoKeyring returns the keyring for the embedded Namesdao key.
func NewNamesdaoKeyring(cache KeyCache) *Keyring {
	return NewKeyring(NamesdaoFingerprint, NamesdaoPublicKey, cache)
}

func (k *Keyring) Fingerprint() string {
	return k.fingerprint
}

func (k *Keyring) cacheKey() string {
	return "pgp:" + k.fingerprint
}

// Entity returns the recipient key, importing it on first use.
func (k *Keyring) Entity() (*openpgp.Entity, error) {
	k.once.Do(func() {
		k.entity, k.err = k.load()
	})
	return k.entity, k.err
}

func (k *Keyring) load() (*openpgp.Entity, error) {
	if k.cache != nil {
		if cached, found := k.cache.Get(k.cacheKey()); found {
			if e, err := findEntity([]byte(cached), k.fingerprint); err == nil {
				return e, nil
			}
		}
	}

	e, err := findEntity(k.armored, k.fingerprint)
	if err != nil {
		return nil, err
	}

	if k.cache != nil {
		if exported, err := exportPublic(e); err == nil {
			// a failed write only means we import again next time
			_ = k.cache.Set(k.cacheKey(), exported)
		}
	}
	return e, nil
}

func findEntity(armored []byte, fingerprint string) (*openpgp.Entity, error) {
	el, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(armored))
	if err != nil {
		return nil, fmt.Errorf("couldn't read armored key ring: %w", err)
	}
	for _, e := range el {
		if EntityFingerprint(e) == fingerprint {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, fingerprint)
}

func exportPublic(e *openpgp.Entity) (string, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		return "", err
	}
	if err := e.Serialize(w); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EntityFingerprint renders the primary key fingerprint as upper case hex.
func EntityFingerprint(e *openpgp.Entity) string {
	return strings.ToUpper(hex.EncodeToString(e.PrimaryKey.Fingerprint[:]))
}

func normalizeFingerprint(fp string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(fp), " ", ""))
}
