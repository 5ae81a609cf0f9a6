package flow

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// ErrNoSecret is returned when signing is attempted without a secret key.
// It must surface before any network call is made.
var ErrNoSecret = fmt.Errorf("secret key is empty")

// Sign computes the gateway signature for a parameter set.
//
// The key literally named "s" is ignored, the remaining keys are sorted in
// ascending byte order, and each key name is concatenated with its value with
// no separator. The result is the lowercase hex HMAC-SHA256 of that string
// keyed by secret. The gateway computes the same string independently, so the
// concatenation must be reproduced byte for byte.
func Sign(params map[string]string, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "s" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha256.New, []byte(secret))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(params[k]))
	}

	return hex.EncodeToString(mac.Sum(nil)), nil
}
