//go:build unit

package queries_test

import (
	"testing"
	"time"

	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 8, 31, 9, 30, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, createdAt.Equal(gotTime), "expected %v, got %v", createdAt, gotTime)
}

func TestAfterCursorTruncatesToMicros(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 8, 31, 9, 30, 0, 123456789, time.UTC)

	encoded := queries.EncodeAfterCursor(createdAt, id)
	gotTime, _, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.True(t, createdAt.Truncate(time.Microsecond).Equal(gotTime))
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "!!not-base64!!"},
		{name: "wrong version", cursor: "djI6MTIzNDU2LWFiYw=="},  // "v2:123456-abc"
		{name: "missing separator", cursor: "djE6MTIzNDU2Nzg="},  // "v1:12345678"
		{name: "non-numeric timestamp", cursor: "djE6YWJjLWRlZg=="}, // "v1:abc-def"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestDecodeAfterCursorRejectsBadUUID(t *testing.T) {
	_, _, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(time.Now(), uuid.New()) + "x")
	assert.Error(t, err)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 200, queries.ValidateLimit(200))
	assert.Equal(t, 200, queries.ValidateLimit(1000))
}
