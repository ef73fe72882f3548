package rewrite

import (
	"path/filepath"
	"strconv"
	"strings"
)

// fallbackStem is used when no file-name stem can be extracted from the
// style path (empty path, bare separator, extension-only name).
const fallbackStem = "component"

// Stem extracts the final path segment of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == "/" || stem == string(filepath.Separator) {
		return fallbackStem
	}
	return stem
}

// Derive computes the scoped identifier for a style path: the file-name stem
// followed by the stem's hash reduced mod 10000, in decimal with no padding.
//
// Derive is a pure function of the stem. Two style files with the same stem
// in different directories produce the same identifier; only the stem feeds
// the hash. Callers rely on identifiers being stable across runs, so the
// hash below must not change.
func Derive(path string) string {
	stem := Stem(path)
	return stem + strconv.FormatUint(uint64(hashStem(stem)%10000), 10)
}

// hashStem is the djb2 recurrence: seed 5381, multiplier 33, wrapping at 32
// bits. Hashing is byte-wise over the raw stem bytes, no normalization.
func hashStem(stem string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(stem); i++ {
		h = h*33 + uint32(stem[i])
	}
	return h
}
