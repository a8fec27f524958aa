package dto

// CredentialResponse is the response shape for credential lookups. Secret is
// the decrypted value, base64-encoded on the wire via JSON []byte encoding.
type CredentialResponse struct {
	Identifier string `json:"identifier"`
	Secret     []byte `json:"secret"`
}
