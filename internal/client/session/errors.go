package session

import (
	"errors"
	"fmt"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// AuthDecodeError reports an access token whose payload cannot be read.
type AuthDecodeError struct {
	Err error
}

func (e *AuthDecodeError) Error() string {
	return fmt.Sprintf("decode access token: %v", e.Err)
}

func (e *AuthDecodeError) Unwrap() error {
	return e.Err
}
