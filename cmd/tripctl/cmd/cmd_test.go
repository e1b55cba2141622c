package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	errOut = io.Discard
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDestinations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/destinations", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"destinations": []string{"Kyoto", "Rome"}})
	}))
	defer srv.Close()

	out, err := run(t, "--server", srv.URL, "destinations")
	require.NoError(t, err)
	assert.Contains(t, out, "Kyoto")
	assert.Contains(t, out, "Rome")
}

func TestTripsCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Rome", body["destination"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "t-1", "title": body["title"], "destination": body["destination"],
			"startDate": body["startDate"], "endDate": body["endDate"], "durationDays": 5,
		})
	}))
	defer srv.Close()

	out, err := run(t, "--server", srv.URL, "trips", "create",
		"--title", "Roman Holiday", "--destination", "Rome",
		"--start", "2025-06-01", "--end", "2025-06-05")
	require.NoError(t, err)
	assert.Contains(t, out, `Created "Roman Holiday"`)
	assert.Contains(t, out, "t-1")
	assert.Contains(t, out, "(5 days)")
}

func TestServerErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := run(t, "--server", srv.URL, "destinations")
	require.Error(t, err)
}
