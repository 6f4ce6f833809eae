// Package credentials resolves the model server username/password from
// the configured chain: explicit arguments, environment (with .env
// support), a key=value properties file, then an interactive prompt.
package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EnvUsername and EnvPassword are consulted after explicit arguments.
	EnvUsername = "SYMEX_USERNAME"
	EnvPassword = "SYMEX_PASSWORD"
)

// Chain implements ports.CredentialSource.
type Chain struct {
	propertiesPath string
	promptIn       io.Reader
	promptOut      io.Writer
}

// Option configures a Chain.
type Option func(*Chain)

// WithPropertiesFile adds a key=value properties file to the chain.
func WithPropertiesFile(path string) Option {
	return func(c *Chain) {
		c.propertiesPath = path
	}
}

// WithPrompt enables the interactive fallback on the given streams.
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(c *Chain) {
		c.promptIn = in
		c.promptOut = out
	}
}

// New creates a credential chain.
func New(opts ...Option) *Chain {
	c := &Chain{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the first complete credentials found in the chain.
func (c *Chain) Resolve(username, password string) (ports.Credentials, error) {
	if username != "" && password != "" {
		return ports.Credentials{Username: username, Password: password}, nil
	}

	// .env values never override variables already set in the process.
	_ = godotenv.Load()
	if user, pass := os.Getenv(EnvUsername), os.Getenv(EnvPassword); user != "" && pass != "" {
		return ports.Credentials{Username: user, Password: pass}, nil
	}

	if c.propertiesPath != "" {
		creds, err := fromProperties(c.propertiesPath)
		if err != nil {
			return ports.Credentials{}, err
		}
		if creds.Username != "" && creds.Password != "" {
			return creds, nil
		}
	}

	if c.promptIn != nil {
		return c.prompt()
	}

	return ports.Credentials{}, domain.ErrMissingCredentials
}

// fromProperties parses a key=value file with username and password
// entries. A missing file is not an error; the chain just moves on.
func fromProperties(path string) (ports.Credentials, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.Credentials{}, nil
		}
		return ports.Credentials{}, zerr.With(zerr.Wrap(err, domain.ErrCredentialsReadFailed.Error()), "path", path)
	}

	var creds ports.Credentials
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "username":
			creds.Username = strings.TrimSpace(value)
		case "password":
			creds.Password = strings.TrimSpace(value)
		}
	}
	return creds, nil
}

func (c *Chain) prompt() (ports.Credentials, error) {
	reader := bufio.NewReader(c.promptIn)

	_, _ = fmt.Fprint(c.promptOut, "Username: ")
	user, err := reader.ReadString('\n')
	if err != nil {
		return ports.Credentials{}, domain.ErrMissingCredentials
	}

	_, _ = fmt.Fprint(c.promptOut, "Password: ")
	pass, err := reader.ReadString('\n')
	if err != nil {
		return ports.Credentials{}, domain.ErrMissingCredentials
	}

	creds := ports.Credentials{
		Username: strings.TrimSpace(user),
		Password: strings.TrimSpace(pass),
	}
	if creds.Username == "" || creds.Password == "" {
		return ports.Credentials{}, domain.ErrMissingCredentials
	}
	return creds, nil
}

var _ ports.CredentialSource = (*Chain)(nil)
