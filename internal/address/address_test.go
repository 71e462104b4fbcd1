package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid ip and port", func(t *testing.T) {
		addr, err := Parse("localhost:8080")
		require.NoError(t, err)
		require.Equal(t, "localhost", addr.Host)
		require.Equal(t, 8080, int(addr.Port))
		require.Equal(t, "localhost:8080", addr.String())
	})

	t.Run("no ip but port", func(t *testing.T) {
		addr, err := Parse(":8080")
		require.NoError(t, err)
		require.Equal(t, DefaultHost, addr.Host)
		require.Equal(t, 8080, int(addr.Port))
		require.Equal(t, "0.0.0.0:8080", addr.String())
	})

	t.Run("ipv6", func(t *testing.T) {
		addr, err := Parse("[::1]:0")
		require.NoError(t, err)
		require.Equal(t, "::1", addr.Host)
		require.Zero(t, addr.Port)
		require.Equal(t, "[::1]:0", addr.String())
	})

	t.Run("only ip", func(t *testing.T) {
		_, err := Parse("localhost")
		require.ErrorIs(t, err, ErrNoPort)

		_, err = Parse("localhost:")
		require.ErrorIs(t, err, ErrNoPort)
	})

	t.Run("too big port", func(t *testing.T) {
		_, err := Parse(":65536")
		require.EqualError(t, err, "invalid port: 65536")
	})
}
