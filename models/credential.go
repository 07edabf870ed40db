package models

// KeyType names the kind of platform-stored credential inside an
// EncryptedCredentialRecord. Bank login credentials never appear here;
// they live only in the external vault.
type KeyType string

const (
	// KeyTypePartnerAPI is a third-party aggregation partner access token
	// issued to the user.
	KeyTypePartnerAPI KeyType = "partner_api"
)

// EncryptedCredentialRecord stores one encrypted platform credential. At
// most one active record exists per (UserID, KeyType) pair; storing again
// overwrites. The plaintext never leaves the encryption layer, and the
// record alone is not decryptable: the caller-held secret is also required.
type EncryptedCredentialRecord struct {
	UserID     string  `json:"userId"`
	KeyType    KeyType `json:"keyType"`
	Ciphertext string  `json:"-"`
}
