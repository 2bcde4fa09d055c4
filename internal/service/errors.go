package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid       = errors.New("invalid")
	ErrMisconfigured = errors.New("server misconfigured")
	ErrUpstream      = errors.New("upstream failure")
)

// ValidationError is returned when caller input is missing or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// ConfigError is returned when a server-side setting required by the
// requested operation is absent.
type ConfigError struct {
	Setting string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Setting)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrMisconfigured
}

// UpstreamError is returned when a provider call fails, answers with an
// error status, or returns a body that does not match the expected shape.
// Raw keeps the provider text for diagnostics when there was one.
type UpstreamError struct {
	Upstream string
	Op       string
	Raw      string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Upstream, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
