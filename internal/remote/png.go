package remote

import "bytes"

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// IsValidPNG reports whether b starts with the PNG file signature.
func IsValidPNG(b []byte) bool {
	return bytes.HasPrefix(b, pngSignature)
}
