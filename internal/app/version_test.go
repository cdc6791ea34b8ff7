package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, version, commit, built, want string
	}{
		{"bare", "dev", "", "", "dev"},
		{"commit shortened", "v1.0.0", "0123456789abcdef", "", "v1.0.0 (0123456)"},
		{"full", "v1.0.0", "abc1234", "2026-01-02T15:04:05Z", "v1.0.0 (abc1234, 2026-01-02T15:04:05Z)"},
		{"time only", "dev", "", "2026-01-02", "dev (2026-01-02)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatVersion(tt.version, tt.commit, tt.built))
		})
	}
}
