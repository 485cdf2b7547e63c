package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MaxKeyLength is the hard cap on a derived key. Keys longer than this are
// truncated so they stay within backend key-length limits.
const MaxKeyLength = 250

// KeySeparator joins the namespace and the encoded key parts.
const KeySeparator = ":"

// hashHexLen is how many hex characters of the digest a composite part
// contributes to the key.
const hashHexLen = 8

// Key identifies one cache entry: a namespace plus the semantic parts that
// distinguish it within the namespace. The encoded form is produced lazily
// by String.
type Key struct {
	Namespace string
	Parts     []any
}

// NewKey builds a Key for namespace from the given parts.
func NewKey(namespace string, parts ...any) Key {
	return Key{Namespace: namespace, Parts: parts}
}

// String returns the derived key string.
func (k Key) String() string {
	return DeriveKey(k.Namespace, k.Parts...)
}

// DeriveKey builds a deterministic, bounded-length cache key.
//
// Scalar parts (strings, numbers, booleans) are appended verbatim. Composite
// parts (maps, slices, structs) are canonicalized via sorted JSON, hashed
// with xxhash, and contribute the first 8 hex characters of the digest; this
// bounds the key length regardless of payload size and keeps arbitrary
// characters out of the key. Identical inputs always derive identical keys,
// including maps whose entries were inserted in a different order.
//
// The result is namespace and parts joined by ":" and truncated to
// MaxKeyLength. Derivation never fails: values that cannot be serialized
// fall back to their default string representation.
func DeriveKey(namespace string, parts ...any) string {
	segs := make([]string, 0, len(parts)+1)
	segs = append(segs, namespace)
	for _, p := range parts {
		segs = append(segs, encodePart(p))
	}

	key := strings.Join(segs, KeySeparator)
	if len(key) > MaxKeyLength {
		key = key[:MaxKeyLength]
	}
	return key
}

// encodePart stringifies a single key part. Scalars pass through; anything
// composite is reduced to a short digest.
func encodePart(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return val
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(val)
	default:
		return hashPart(v)
	}
}

// hashPart canonicalizes a composite value and returns the first 8 hex
// characters of its xxhash digest.
func hashPart(v any) string {
	canonical := canonicalize(v)
	sum := xxhash.Sum64(canonical)
	return fmt.Sprintf("%016x", sum)[:hashHexLen]
}

// canonicalize produces a deterministic byte representation of v.
// Maps are serialized with sorted keys so insertion order never leaks into
// the derived key.
func canonicalize(v any) []byte {
	if v == nil {
		return []byte("null")
	}

	switch val := v.(type) {
	case map[string]any:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	default:
		// encoding/json sorts map keys for concrete map types, so standard
		// marshaling is already deterministic here.
		data, err := json.Marshal(v)
		if err != nil {
			return []byte(fmt.Sprintf("%v", v))
		}
		return data
	}
}

func canonicalizeMap(m map[string]any) []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			keyBytes = []byte(fmt.Sprintf("%q", k))
		}
		result = append(result, keyBytes...)
		result = append(result, ':')
		result = append(result, canonicalize(m[k])...)
	}
	result = append(result, '}')

	return result
}

func canonicalizeSlice(s []any) []byte {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}
		result = append(result, canonicalize(v)...)
	}
	result = append(result, ']')

	return result
}
