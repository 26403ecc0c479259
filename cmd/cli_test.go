package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fharpR4/roomie-app/internal/version"
)

// executeCLI runs the binary entry point against a scratch home directory so
// config and session state never leak between tests.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"tok","user":{"id":"u1","email":"ada@x.ng"}}`))
	})
	mux.HandleFunc("/rest/v1/profiles", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"u1","full_name":"Ada Obi","email":"ada@x.ng","institution":"FUTA","verified":true}]`))
	})
	mux.HandleFunc("/rest/v1/rooms", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"r1","title":"Single room","city":"Akure","price":45000,"is_available":true}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func useBackend(t *testing.T, server *httptest.Server) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROOMIE_BACKEND_URL", server.URL)
	t.Setenv("ROOMIE_BACKEND_ANON_KEY", "anon-key")
}

func TestVersionCommand(t *testing.T) {
	useBackend(t, newBackend(t))

	out, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}

func TestMissingBackendURLFailsEveryCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROOMIE_BACKEND_URL", "")

	_, err := executeCLI(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend url is not configured")
}

func TestLoginRequiresEmailFlag(t *testing.T) {
	useBackend(t, newBackend(t))

	_, err := executeCLI(t, "login", "--password", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestWhoamiWithoutSession(t *testing.T) {
	useBackend(t, newBackend(t))

	_, err := executeCLI(t, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestLoginThenWhoami(t *testing.T) {
	useBackend(t, newBackend(t))

	out, err := executeCLI(t, "login", "--email", "ada@x.ng", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Ada Obi")

	// The stored session survives into the next invocation.
	out, err = executeCLI(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Obi <ada@x.ng>")
	assert.Contains(t, out, "FUTA")
	assert.Contains(t, out, "verified")
}

func TestRoomsListRequiresSession(t *testing.T) {
	useBackend(t, newBackend(t))

	_, err := executeCLI(t, "rooms", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestRoomsListPrintsRooms(t *testing.T) {
	useBackend(t, newBackend(t))

	_, err := executeCLI(t, "login", "--email", "ada@x.ng", "--password", "pw")
	require.NoError(t, err)

	out, err := executeCLI(t, "rooms", "list", "--city", "Akure")
	require.NoError(t, err)
	assert.Contains(t, out, "Single room")
	assert.Contains(t, out, "₦45000")
}
