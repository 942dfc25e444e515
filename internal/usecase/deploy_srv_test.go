package usecase

import (
	"context"
	"errors"
	"testing"

	"room-booking/pkg/signature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signed(t *testing.T, algo string, body []byte, secret string) string {
	t.Helper()
	header, ok := signature.Sign(algo, body, secret)
	require.True(t, ok)
	return header
}

func TestDeployService_Deploy(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main"}`)
	ctx := context.Background()

	t.Run("valid signature pulls", func(t *testing.T) {
		puller := &fakePuller{}
		svc := NewDeployService("s3cret", puller, zap.NewNop())

		require.NoError(t, svc.Deploy(ctx, signed(t, "sha1", body, "s3cret"), body))
		require.NoError(t, svc.Deploy(ctx, signed(t, "sha256", body, "s3cret"), body))
		assert.Equal(t, 2, puller.calls)
	})

	t.Run("invalid signature does not pull", func(t *testing.T) {
		puller := &fakePuller{}
		svc := NewDeployService("s3cret", puller, zap.NewNop())

		for _, header := range []string{
			"",
			"sha1",
			"md4=abc",
			signed(t, "sha1", body, "other"),
			signed(t, "sha1", []byte("tampered"), "s3cret"),
		} {
			assert.ErrorIs(t, svc.Deploy(ctx, header, body), ErrInvalidSignature, header)
		}
		assert.Zero(t, puller.calls)
	})

	t.Run("empty secret fails closed", func(t *testing.T) {
		puller := &fakePuller{}
		svc := NewDeployService("", puller, zap.NewNop())

		err := svc.Deploy(ctx, signed(t, "sha1", body, ""), body)
		assert.ErrorIs(t, err, ErrInvalidSignature)
		assert.Zero(t, puller.calls)
	})

	t.Run("pull failure surfaces", func(t *testing.T) {
		pullErr := errors.New("remote unreachable")
		puller := &fakePuller{err: pullErr}
		svc := NewDeployService("s3cret", puller, zap.NewNop())

		err := svc.Deploy(ctx, signed(t, "sha1", body, "s3cret"), body)
		assert.ErrorIs(t, err, pullErr)
		assert.NotErrorIs(t, err, ErrInvalidSignature)
	})
}
