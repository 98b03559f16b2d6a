package sessioncookie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTripAndTamper(t *testing.T) {
	c := New([]byte("0123456789abcdef"), "sid", false, time.Hour)

	v := c.Encode("3f1c-session")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "3f1c-session", id)

	other := New([]byte("fedcba9876543210"), "sid", false, time.Hour)
	_, err = other.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)

	for _, bad := range []string{"", "nosig", ".sig", "a.b.c", "3f1c-session.AAAA"} {
		_, err := c.Decode(bad)
		assert.ErrorIs(t, err, ErrInvalid, bad)
	}
}
