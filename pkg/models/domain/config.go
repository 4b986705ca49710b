package domain

// Credentials hold the API endpoint and token for a configured profile
type Credentials struct {
	Host  string
	Token string
}
