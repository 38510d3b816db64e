package authentication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestTokenRoundTrip(t *testing.T) {
	keyring.MockInit()

	_, err := GetToken()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, StoreToken(&StoredCredentials{Token: "tkn", Username: "root", ExpiresAt: 42}))

	creds, err := GetToken()
	require.NoError(t, err)
	assert.Equal(t, "tkn", creds.Token)
	assert.Equal(t, "root", creds.Username)

	require.NoError(t, DeleteToken())
	require.NoError(t, DeleteToken(), "deleting twice is fine")

	_, err = GetToken()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
