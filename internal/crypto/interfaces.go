package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cipher_mock.go -package=mock

// CredentialCipher protects platform-issued third-party access tokens at
// rest. It is distinct from the external vault: the vault stores bank login
// credentials, while this cipher encrypts API keys the platform itself
// persists in its own database.
//
// Scheme:
//
//	userKey            = PBKDF2(masterKey, salt=userID)      (per call)
//	ciphertext, secret = Encrypt(plaintext, userID)
//	plaintext          = Decrypt(ciphertext, secret, userID)
//
// The secret (nonce + authentication tag) is returned to the caller and
// never retained by the server, so a stored ciphertext alone is
// undecryptable even with the master key.
type CredentialCipher interface {
	// Encrypt encrypts plaintext under the user-scoped key with a fresh
	// CSPRNG nonce. Returns the base64 ciphertext and the caller-held
	// opaque secret required to decrypt it later.
	Encrypt(plaintext, userID string) (ciphertext, secret string, err error)

	// Decrypt reverses Encrypt. It fails with [ErrTamperedSecret] when the
	// authentication tag does not verify: a wrong secret, a wrong user, or
	// a modified ciphertext. Callers surface that as unauthorized, never
	// as not-found.
	Decrypt(ciphertext, secret, userID string) (string, error)
}
