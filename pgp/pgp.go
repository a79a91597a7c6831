package pgp

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
	// Keys without hash preferences are treated as preferring RIPEMD160.
	_ "golang.org/x/crypto/ripemd160"
)

// Encrypt encrypts plaintext to the keyring's recipient only, without
// signing, and returns an armored PGP MESSAGE block.
func (k *Keyring) Encrypt(plaintext []byte) (string, error) {
	recipient, err := k.Entity()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	aw, err := armor.Encode(&buf, "PGP MESSAGE", nil)
	if err != nil {
		return "", err
	}
	pw, err := openpgp.Encrypt(aw, []*openpgp.Entity{recipient}, nil, &openpgp.FileHints{IsBinary: true}, nil)
	if err != nil {
		return "", fmt.Errorf("couldn't encrypt to %s: %w", k.fingerprint, err)
	}
	if _, err := pw.Write(plaintext); err != nil {
		return "", err
	}
	if err := pw.Close(); err != nil {
		return "", err
	}
	if err := aw.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Verify checks a detached signature, armored or binary, over the exact
// message bytes. A signature that is malformed, made by another key or
// does not match reports false with a nil error. An error means the
// recipient key itself could not be loaded.
func (k *Keyring) Verify(message, signature []byte) (bool, error) {
	key, err := k.Entity()
	if err != nil {
		return false, err
	}
	keyring := openpgp.EntityList{key}

	if isArmored(signature) {
		_, err = openpgp.CheckArmoredDetachedSignature(keyring, bytes.NewReader(message), bytes.NewReader(signature))
	} else {
		_, err = openpgp.CheckDetachedSignature(keyring, bytes.NewReader(message), bytes.NewReader(signature))
	}
	if err != nil {
		return false, nil
	}
	return true, nil
}

func isArmored(b []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(b), []byte("-----BEGIN"))
}
