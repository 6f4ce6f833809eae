package ports

// Credentials is a resolved username/password pair for Basic Auth
// against the model server.
type Credentials struct {
	Username string
	Password string
}

// CredentialSource resolves credentials from the configured chain
// (arguments, environment, properties file, interactive prompt).
//
//go:generate mockgen -source=credentials.go -destination=mocks/mock_credentials.go -package=mocks
type CredentialSource interface {
	// Resolve returns the first credentials found in the chain, with
	// the explicitly provided pair checked first, or
	// domain.ErrMissingCredentials when the chain is exhausted.
	Resolve(username, password string) (Credentials, error)
}
