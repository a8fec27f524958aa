package dto

// KeyResponse is the response shape for key material lookups.
type KeyResponse struct {
	Tag      string `json:"tag"`
	Material []byte `json:"material"`
}

// KeyPairResponse is the response shape for key pair generation and public
// key lookups. Only the public half is ever exposed.
type KeyPairResponse struct {
	Tag       string `json:"tag"`
	PublicKey string `json:"public_key"`
}
