// Package signature checks HMAC signatures of inbound webhook payloads.
package signature

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// algorithms maps the algorithm names accepted in a signature header to the
// hash constructors used as HMAC digest.
var algorithms = map[string]func() hash.Hash{
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512_224": sha512.New512_224,
	"sha512_256": sha512.New512_256,
	"sha3_224":   sha3.New224,
	"sha3_256":   sha3.New256,
	"sha3_384":   sha3.New384,
	"sha3_512":   sha3.New512,
}

// Supported reports whether algo can be used in a signature header.
func Supported(algo string) bool {
	_, ok := algorithms[algo]
	return ok
}

// Sign returns the header value "<algo>=<hexdigest>" for body keyed with secret.
func Sign(algo string, body []byte, secret string) (string, bool) {
	newHash, ok := algorithms[algo]
	if !ok {
		return "", false
	}
	return algo + "=" + digest(newHash, body, secret), true
}

// Verify checks a header of the form "<algo>=<hexdigest>" against the HMAC
// of body keyed with secret. Unknown algorithms and malformed headers fail.
// The digests are compared in constant time.
func Verify(header string, body []byte, secret string) bool {
	algo, sig, ok := strings.Cut(header, "=")
	if !ok {
		return false
	}

	newHash, ok := algorithms[algo]
	if !ok {
		return false
	}

	expected := digest(newHash, body, secret)
	return hmac.Equal([]byte(expected), []byte(sig))
}

func digest(newHash func() hash.Hash, body []byte, secret string) string {
	mac := hmac.New(newHash, latin1(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// latin1 encodes the key one byte per rune. Runes outside Latin-1 cannot be
// represented and are replaced by '?', which keeps the key deterministic.
func latin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xff {
			out = append(out, '?')
			continue
		}
		out = append(out, byte(r))
	}
	return out
}
