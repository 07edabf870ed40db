package partner

import "errors"

var (
	// ErrUnauthorized means the partner API rejected the access token.
	ErrUnauthorized = errors.New("partner api rejected the access token")

	// ErrUpstream wraps transport and unexpected-response failures of the
	// partner API.
	ErrUpstream = errors.New("partner api failure")
)
