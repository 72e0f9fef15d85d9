package kroger

import "errors"

// ErrReauthRequired means the stored user token is unrecoverable (missing,
// or its refresh failed). The stored row has already been deleted; the
// caller must restart the OAuth flow.
var ErrReauthRequired = errors.New("kroger token expired, please re-authenticate with Kroger")

// AuthError means Kroger rejected the app-level client credentials
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "failed to authenticate with Kroger API: " + e.Message
}

// OAuthError means a user authorization-code exchange or refresh failed
// (expired or invalid code/refresh token)
type OAuthError struct {
	Message string
}

func (e *OAuthError) Error() string {
	return "kroger OAuth flow failed: " + e.Message
}

// CartError means a cart operation was rejected by Kroger; Message carries
// the partner's error text so it can be recorded per item
type CartError struct {
	Message string
}

func (e *CartError) Error() string {
	return "kroger cart error: " + e.Message
}
