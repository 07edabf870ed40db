package crypto

import "errors"

var (
	// ErrTamperedSecret is returned by Decrypt when authentication-tag
	// verification fails. It covers a wrong secret, a wrong user ID, and a
	// modified ciphertext alike; the cipher cannot tell these apart and
	// must not try. Callers map it to an unauthorized response.
	ErrTamperedSecret = errors.New("credential secret is invalid or tampered")

	// ErrMalformedCiphertext is returned when the ciphertext or secret is
	// not valid base64 or has an impossible length. It indicates a caller
	// bug or storage corruption rather than an authentication failure.
	ErrMalformedCiphertext = errors.New("malformed ciphertext or secret")
)
