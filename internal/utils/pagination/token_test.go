package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	journalDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 4, 1, 10, 30, 15, 123456789, time.UTC)

	token := pagination.EncodeToken(journalDate, createdAt)

	gotDate, gotCreatedAt, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, journalDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		_, _, err := pagination.DecodeToken("not-a-token%%%")
		assert.Error(t, err)
	})

	t.Run("missing separator", func(t *testing.T) {
		token := base64.StdEncoding.EncodeToString([]byte("2026-04-01T00:00:00Z"))
		_, _, err := pagination.DecodeToken(token)
		assert.Error(t, err)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		token := base64.StdEncoding.EncodeToString([]byte("yesterday|today"))
		_, _, err := pagination.DecodeToken(token)
		assert.Error(t, err)
	})
}
