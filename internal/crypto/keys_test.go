package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltSize)

	salt2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2)
}

func TestDeriveStoreKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	tests := []struct {
		name       string
		passphrase string
		salt       []byte
		errMsg     string
	}{
		{"valid", "correct horse", salt, ""},
		{"empty passphrase", "", salt, "passphrase cannot be empty"},
		{"short salt", "correct horse", salt[:8], "salt must be 32 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveStoreKey(tt.passphrase, tt.salt)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, KeySize)
		})
	}
}

func TestDeriveStoreKey_Determinism(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveStoreKey("passphrase", salt)
	require.NoError(t, err)
	key2, err := DeriveStoreKey("passphrase", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	key3, err := DeriveStoreKey("passphrase", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)

	key4, err := DeriveStoreKey("other", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key4)
}

func TestDeriveStoreKey_UsableBySealer(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveStoreKey("passphrase", salt)
	require.NoError(t, err)

	s, err := NewSealer(key)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("record"))
	require.NoError(t, err)
	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("record"), opened)
}
