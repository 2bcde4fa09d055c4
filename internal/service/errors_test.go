package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"vetpost/backend/internal/service"
)

func TestErrors_MatchSentinels(t *testing.T) {
	var err error = &service.ValidationError{Message: "date is required"}
	require.ErrorIs(t, fmt.Errorf("generate: %w", err), service.ErrInvalid)
	require.NotErrorIs(t, err, service.ErrUpstream)

	err = &service.ConfigError{Setting: "API_KEY", Message: "text key missing"}
	require.ErrorIs(t, err, service.ErrMisconfigured)
	require.Equal(t, "text key missing (API_KEY)", err.Error())

	err = &service.UpstreamError{Upstream: "gemini", Op: "generate", Err: context.DeadlineExceeded}
	require.ErrorIs(t, err, service.ErrUpstream)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, "gemini generate: context deadline exceeded", err.Error())

	var upstream *service.UpstreamError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &upstream))
	require.Equal(t, "gemini", upstream.Upstream)
}
