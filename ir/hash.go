package ir

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Checksum returns the hex md5 digest of v's canonical JSON form, in which
// object keys are sorted. Two values that are Equal have the same checksum.
func (v *Value) Checksum() (string, error) {
	d, err := json.Marshal(ToAny(v))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrJSON, err)
	}
	sum := md5.Sum(d)
	return hex.EncodeToString(sum[:]), nil
}
