package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, handler http.Handler, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--addr", srv.URL))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHelloCommand(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Hello, World from Ann!"}`)
	})

	out, err := runCLI(t, handler, "hello", "Ann")

	require.NoError(t, err)
	assert.Equal(t, "name=Ann", gotQuery)
	assert.JSONEq(t, `{"message":"Hello, World from Ann!"}`, out)
}

func TestIncrementsSetCommand_RejectsNonInteger(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	_, err := runCLI(t, handler, "increments", "set", "visits", "many")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer")
}

func TestNotesGetCommand_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"note not found","code":"NOTE_NOT_FOUND"}`)
	})

	_, err := runCLI(t, handler, "notes", "get", "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
