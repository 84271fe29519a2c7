package forge_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forge "github.com/lexfrei/go-forge"
	"github.com/lexfrei/go-forge/internal/testutil"
)

const (
	listServersSuccess = `{
  "data": [
    {
      "id": 5,
      "name": "production-1",
      "ip_address": "203.0.113.10",
      "region": "ams3",
      "size": "4GB",
      "php_version": "php84",
      "is_ready": true,
      "created_at": "2026-01-02 11:30:00"
    },
    {
      "id": 6,
      "name": "staging-1",
      "ip_address": "203.0.113.11",
      "region": "ams3",
      "size": "2GB",
      "php_version": "php84",
      "is_ready": false,
      "created_at": "2026-01-03 16:45:12"
    }
  ]
}`

	getServerSuccess = `{
  "data": {
    "id": 5,
    "name": "production-1",
    "ip_address": "203.0.113.10",
    "region": "ams3",
    "size": "4GB",
    "php_version": "php84",
    "is_ready": true,
    "created_at": "2026-01-02 11:30:00"
  }
}`
)

func TestServersList(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/servers", "test-token", listServersSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	servers, err := client.Servers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, servers, 2)

	assert.Equal(t, int64(5), servers[0].ID)
	assert.Equal(t, "production-1", servers[0].Name)
	assert.Equal(t, "203.0.113.10", servers[0].IPAddress)
	assert.True(t, servers[0].IsReady)

	assert.Equal(t, "staging-1", servers[1].Name)
	assert.False(t, servers[1].IsReady)
}

func TestServersGet(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/servers/5", "test-token", getServerSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	srv, err := client.Servers.Get(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, srv)

	assert.Equal(t, int64(5), srv.ID)
	assert.Equal(t, "ams3", srv.Region)
	assert.Equal(t, "php84", srv.PHPVersion)
}

func TestServersGetNotFound(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/servers/999", "test-token",
		`{"message": "Server not found."}`, http.StatusNotFound)
	defer server.Close()

	client := newTestClient(t, server.URL)

	srv, err := client.Servers.Get(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, forge.ErrNotFound)
}

func TestServersReboot(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers/5/reboot", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Servers.Reboot(context.Background(), 5)
	require.NoError(t, err)
}

func TestServersRebootServerError(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/servers/5/reboot", "test-token",
		`{"message": "Internal error."}`, http.StatusInternalServerError)
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Servers.Reboot(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, forge.ErrServer)
}
