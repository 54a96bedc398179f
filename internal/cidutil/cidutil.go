// Package cidutil derives content identifiers for resolved records.
//
// Two records describe the same environment exactly when their identifiers
// match, which lets callers detect conflicting re-resolution of a build unit
// and lets consumers of generated files check which record they were built
// against.
package cidutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/specialistvlad/platformid/internal/platform"
)

// CIDv1RawSHA256 returns a CIDv1 using the "raw" multicodec and a sha2-256
// multihash of data.
func CIDv1RawSHA256(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Canonical returns the canonical encoding of rec: a JSON array of
// [name, value] pairs in vocabulary order, without RECORD_ID.
func Canonical(rec platform.Record) ([]byte, error) {
	consts := rec.Constants("")
	pairs := make([][2]any, 0, len(consts))
	for _, c := range consts {
		pairs = append(pairs, [2]any{c.Name, c.Value()})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pairs); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// RecordID returns the string form of the content identifier of rec.
func RecordID(rec platform.Record) (string, error) {
	data, err := Canonical(rec)
	if err != nil {
		return "", err
	}
	c, err := CIDv1RawSHA256(data)
	if err != nil {
		return "", fmt.Errorf("failed to hash record: %w", err)
	}
	return c.String(), nil
}
