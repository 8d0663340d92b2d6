package probe

import (
	"fmt"
	"strings"
)

// Product key layout inside the encoded license blob.
const (
	productKeyOffset = 52
	productKeyLen    = 15
	productKeyChars  = 25
	keyAlphabet      = "BCDFGHJKMPQRTVWXY2346789"
)

// maskedKeyPrefix replaces every group of a decoded key except the last.
const maskedKeyPrefix = "XXXXX-XXXXX-XXXXX-XXXXX-"

// decodeProductKey extracts the 25-character product key from an encoded
// license blob. The designated 15-byte window is treated as one base-256
// little-endian number that is repeatedly divided by 24; each remainder maps
// through the fixed alphabet. The characters come out least-significant
// first and are reversed, then grouped into hyphen-joined 5-character
// segments.
func decodeProductKey(blob []byte) (string, error) {
	if len(blob) < productKeyOffset+productKeyLen {
		return "", fmt.Errorf("license blob too short: %d bytes", len(blob))
	}

	digits := make([]int, productKeyLen)
	for i, b := range blob[productKeyOffset : productKeyOffset+productKeyLen] {
		digits[i] = int(b)
	}

	chars := make([]byte, productKeyChars)
	for t := 0; t < productKeyChars; t++ {
		k := 0
		for j := productKeyLen - 1; j >= 0; j-- {
			k = k<<8 | digits[j]
			digits[j] = k / 24
			k %= 24
		}
		chars[productKeyChars-1-t] = keyAlphabet[k]
	}

	groups := make([]string, 0, productKeyChars/5)
	for i := 0; i < len(chars); i += 5 {
		groups = append(groups, string(chars[i:i+5]))
	}
	return strings.Join(groups, "-"), nil
}

// maskProductKey hides all but the last group of a decoded product key,
// keeping the trailing five characters visible.
func maskProductKey(key string) string {
	if len(key) < 5 {
		return "Not available"
	}
	return maskedKeyPrefix + key[len(key)-5:]
}
