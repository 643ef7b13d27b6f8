// Package signature implements the gateway's request signing scheme.
//
// A request is marshalled to a flat JSON object, base64-encoded into `data`,
// and signed as base64(sha1(private_key + data + private_key)). The remote
// verifier uses SHA-1 with the private key concatenated on both sides of the
// encoded payload; the scheme has to match it byte for byte, so neither the
// digest nor the concatenation order may be changed here.
package signature

import (
	"crypto/sha1" //nolint:gosec // The gateway verifies with SHA-1.
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Encode marshals params and base64-encodes the result into the `data` string
// the gateway expects.
func Encode(params any) (string, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// Decode reverses Encode, unmarshalling a `data` string into dst.
func Decode(data string, dst any) error {
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("decode data: %w", err)
	}

	err = json.Unmarshal(b, dst)
	if err != nil {
		return fmt.Errorf("unmarshal params: %w", err)
	}

	return nil
}

// Sign computes the signature for an already encoded payload.
func Sign(privateKey, data string) string {
	sum := sha1.Sum([]byte(privateKey + data + privateKey)) //nolint:gosec // Gateway requirement.

	return base64.StdEncoding.EncodeToString(sum[:])
}

// Verify reports whether sig is a valid signature for data. Comparison is
// constant-time.
func Verify(privateKey, data, sig string) bool {
	want := Sign(privateKey, data)

	return subtle.ConstantTimeCompare([]byte(want), []byte(sig)) == 1
}
