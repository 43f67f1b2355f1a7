package scope

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.CreateToken(Payload{UserID: 12, Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Payload{UserID: 12, Email: "a@b.c", Role: "admin"}, p)
}

func TestManager_RejectsForeignAndExpiredTokens(t *testing.T) {
	m, err := New("secret", time.Minute)
	require.NoError(t, err)
	other, err := New("other", time.Minute)
	require.NoError(t, err)

	token, err := other.CreateToken(Payload{UserID: 1})
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	impl := m.(*implManager)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	expired, err := m.CreateToken(Payload{UserID: 1})
	require.NoError(t, err)
	impl.now = time.Now
	_, err = m.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestPayloadContext(t *testing.T) {
	_, ok := GetPayloadFromContext(context.Background())
	assert.False(t, ok)

	ctx := SetPayloadToContext(context.Background(), Payload{UserID: 3})
	p, ok := GetPayloadFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(3), p.UserID)
}
