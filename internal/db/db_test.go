package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRoundTrip(t *testing.T) {
	kv, err := Open(":memory:")
	require.NoError(t, err)

	_, ok := kv.Get(KeyTheme)
	assert.False(t, ok, "missing key should report absence")

	require.NoError(t, kv.Set(KeyTheme, "dark"))
	got, ok := kv.Get(KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", got)
}

func TestKVOverwrite(t *testing.T) {
	kv, err := Open(":memory:")
	require.NoError(t, err)

	require.NoError(t, kv.Set(KeyLanguage, "en"))
	require.NoError(t, kv.Set(KeyLanguage, "hi"))

	got, ok := kv.Get(KeyLanguage)
	assert.True(t, ok)
	assert.Equal(t, "hi", got)
}
