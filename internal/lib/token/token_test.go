package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	first, err := Generate()
	require.NoError(t, err)
	second, err := Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	raw, err := base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// токен должен быть безопасен для вставки в URL
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}
