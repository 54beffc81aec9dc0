package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"marketplace/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) []byte {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	require.NoError(t, app.Run(append([]string{"marketctl"}, args...)))

	return out.Bytes()
}

func TestClassifyCommand(t *testing.T) {
	var class policy.Classification
	require.NoError(t, json.Unmarshal(runApp(t, "classify", "--category", " Delivery ", "--legacy", "both"), &class))

	assert.True(t, class.IsDeliveryService)
	assert.Equal(t, policy.SourceLegacyCategory, class.DeliverySource)
	assert.True(t, class.IsProductSeller)
	assert.Equal(t, policy.SourceLegacyType, class.SellerSource)
}

func TestClassifyCommand_Generic(t *testing.T) {
	var class policy.Classification
	require.NoError(t, json.Unmarshal(runApp(t, "classify", "--lookup", "Salon"), &class))

	assert.False(t, class.IsTyped())
}

func TestRightsCommand_RejectsBadUser(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"marketctl", "rights", "--user", "nope"})
	assert.ErrorContains(t, err, "invalid --user")
}
