package lib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestTokenRevoker(t *testing.T) {
	rd, mock := redismock.NewClientMock()
	revoker := NewTokenRevoker(rd)
	ctx := context.Background()

	mock.ExpectSet("revoked:abc", "1", time.Hour).SetVal("OK")
	mock.ExpectExists("revoked:abc").SetVal(1)
	mock.ExpectExists("revoked:def").SetVal(0)

	assert.NoError(t, revoker.Revoke(ctx, "abc", time.Hour))

	revoked, err := revoker.IsRevoked(ctx, "abc")
	assert.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = revoker.IsRevoked(ctx, "def")
	assert.NoError(t, err)
	assert.False(t, revoked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRevokerError(t *testing.T) {
	rd, mock := redismock.NewClientMock()
	revoker := NewTokenRevoker(rd)

	mock.ExpectExists("revoked:abc").SetErr(errors.New("connection refused"))

	_, err := revoker.IsRevoked(context.Background(), "abc")
	assert.Error(t, err)
}

func TestTokenRevokerDisabled(t *testing.T) {
	var revoker *TokenRevoker
	assert.False(t, revoker.Enabled())
	assert.NoError(t, revoker.Revoke(context.Background(), "abc", time.Hour))

	revoked, err := NewTokenRevoker(nil).IsRevoked(context.Background(), "abc")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
