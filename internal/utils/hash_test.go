package utils_test

import (
	"testing"

	"github.com/alazar/finance-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHash(t *testing.T) {
	// Values produced by the original JavaScript implementation.
	tests := []struct {
		input    string
		expected string
	}{
		{"", "0"},
		{"admin", "92668751"},
		{"6Rm%HLz4", "-1754662350"},
		{"password", "1216985755"},
		{"secret123", "-739593854"},
		{"correct horse battery staple", "1237976533"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, utils.LegacyHash(tt.input), "input %q", tt.input)
	}
}

func TestCheckPasswordLegacy(t *testing.T) {
	stored := utils.LegacyHash("6Rm%HLz4")
	assert.True(t, utils.CheckPassword("6Rm%HLz4", stored))
	assert.False(t, utils.CheckPassword("wrong", stored))
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, utils.CheckPassword("hunter2", hash))
	assert.False(t, utils.CheckPassword("hunter3", hash))
}
