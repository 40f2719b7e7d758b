//go:build unit

package passcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := Hash("letmein42")
	require.NoError(t, err)

	assert.NoError(t, Compare(hashed, "letmein42"))
	assert.ErrorIs(t, Compare(hashed, "letmein43"), ErrComparisonFailed)
	assert.ErrorIs(t, Compare(hashed, ""), ErrInvalidPasscode)
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")

	assert.ErrorIs(t, err, ErrInvalidPasscode)
}

func TestResolve(t *testing.T) {
	t.Run("plain passcode is hashed", func(t *testing.T) {
		hashed, err := Resolve("abcd1234", "")

		require.NoError(t, err)
		assert.NoError(t, Compare(hashed, "abcd1234"))
	})

	t.Run("explicit hash wins", func(t *testing.T) {
		existing, err := Hash("other99")
		require.NoError(t, err)

		hashed, err := Resolve("abcd1234", existing)

		require.NoError(t, err)
		assert.Equal(t, existing, hashed)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := Resolve("", "not-a-bcrypt-hash")

		assert.ErrorIs(t, err, ErrInvalidPasscode)
	})
}
