package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPIsLocal(t *testing.T) {
	assert.True(t, IPIsLocal("127.0.0.1:5050"))
	assert.True(t, IPIsLocal("172.17.0.1:33456"))
	assert.False(t, IPIsLocal("88.77.66.55:443"))
	assert.False(t, IPIsLocal("172.17.0.2:33456"))
}

func TestReadUserIP(t *testing.T) {
	t.Run("from x-real-ip header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/profile", nil)
		r.Header.Set("X-Real-Ip", "88.77.66.55")
		ip, err := ReadUserIP(r)
		require.NoError(t, err)
		assert.Equal(t, "88.77.66.55", ip)
	})

	t.Run("from remote addr with port", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/profile", nil)
		r.RemoteAddr = "88.77.66.55:54321"
		ip, err := ReadUserIP(r)
		require.NoError(t, err)
		assert.Equal(t, "88.77.66.55", ip)
	})

	t.Run("local addr collapses to localhost", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/profile", nil)
		r.RemoteAddr = "127.0.0.1:5050"
		ip, err := ReadUserIP(r)
		require.NoError(t, err)
		assert.Equal(t, "localhost", ip)
	})

	t.Run("garbage addr rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/profile", nil)
		r.RemoteAddr = "not-an-ip"
		_, err := ReadUserIP(r)
		assert.Error(t, err)
	})
}
