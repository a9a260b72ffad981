package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPNG(t *testing.T) {
	signature := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"nil", nil, false},
		{"empty", []byte{}, false},
		{"signature prefix only", signature[:7], false},
		{"exact signature", signature, true},
		{"signature with payload", append(append([]byte{}, signature...), 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'), true},
		{"first byte differs", append([]byte{0x88}, signature[1:]...), false},
		{"last byte differs", append(append([]byte{}, signature[:7]...), 0x0B), false},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}, false},
		{"html", []byte("<!doctype html><html></html>"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPNG(tt.input))
		})
	}
}

func TestIsValidPNG_ShortInputs(t *testing.T) {
	for n := 0; n < 8; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = 0x89
		}
		assert.False(t, IsValidPNG(b), "length %d", n)
	}
}
