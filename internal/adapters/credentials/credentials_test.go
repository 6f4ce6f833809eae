package credentials_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symex/internal/adapters/credentials"
	"go.trai.ch/symex/internal/core/domain"
)

func TestChain_Resolve(t *testing.T) {
	t.Run("ExplicitArgsWin", func(t *testing.T) {
		t.Setenv(credentials.EnvUsername, "env-user")
		t.Setenv(credentials.EnvPassword, "env-pass")

		creds, err := credentials.New().Resolve("alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", creds.Username)
		assert.Equal(t, "secret", creds.Password)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv(credentials.EnvUsername, "env-user")
		t.Setenv(credentials.EnvPassword, "env-pass")

		creds, err := credentials.New().Resolve("", "")
		require.NoError(t, err)
		assert.Equal(t, "env-user", creds.Username)
		assert.Equal(t, "env-pass", creds.Password)
	})

	t.Run("PropertiesFile", func(t *testing.T) {
		t.Setenv(credentials.EnvUsername, "")
		t.Setenv(credentials.EnvPassword, "")

		path := filepath.Join(t.TempDir(), "credentials.properties")
		require.NoError(t, os.WriteFile(path, []byte(`
# model server account
username = bob
password = hunter2
`), 0o600))

		creds, err := credentials.New(credentials.WithPropertiesFile(path)).Resolve("", "")
		require.NoError(t, err)
		assert.Equal(t, "bob", creds.Username)
		assert.Equal(t, "hunter2", creds.Password)
	})

	t.Run("PromptFallback", func(t *testing.T) {
		t.Setenv(credentials.EnvUsername, "")
		t.Setenv(credentials.EnvPassword, "")

		var out strings.Builder
		chain := credentials.New(credentials.WithPrompt(strings.NewReader("carol\npw\n"), &out))

		creds, err := chain.Resolve("", "")
		require.NoError(t, err)
		assert.Equal(t, "carol", creds.Username)
		assert.Equal(t, "pw", creds.Password)
		assert.Contains(t, out.String(), "Username:")
	})

	t.Run("ChainExhausted", func(t *testing.T) {
		t.Setenv(credentials.EnvUsername, "")
		t.Setenv(credentials.EnvPassword, "")

		_, err := credentials.New().Resolve("", "")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrMissingCredentials.Error())
	})

	t.Run("MissingPropertiesFileSkipped", func(t *testing.T) {
		t.Setenv(credentials.EnvUsername, "")
		t.Setenv(credentials.EnvPassword, "")

		chain := credentials.New(credentials.WithPropertiesFile(filepath.Join(t.TempDir(), "nope")))
		_, err := chain.Resolve("", "")
		assert.ErrorContains(t, err, domain.ErrMissingCredentials.Error())
	})
}
