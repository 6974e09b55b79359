package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingServer(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSurfacesNonJSONResponse(t *testing.T) {
	// An upstream outage page arrives as 200 with an HTML body. That must
	// fail, not decode into an empty booking.
	srv := bookingServer(t, http.StatusOK, "text/html", "<html>Service Temporarily Unavailable</html>")

	repo := NewBookingRepo(NewClient(srv.URL, ""))
	b, err := repo.Fetch(context.Background(), "bk1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
	assert.Empty(t, b.ID)
}

func TestFetchDecodesDriftedPayload(t *testing.T) {
	srv := bookingServer(t, http.StatusOK, "application/json",
		`{"id":"bk1","jobsPrices":[{"id":"j1","price":60,"duration":30}]}`)

	repo := NewBookingRepo(NewClient(srv.URL, ""))
	b, err := repo.Fetch(context.Background(), "bk1")
	require.NoError(t, err)
	assert.Equal(t, "bk1", b.ID)
	assert.Contains(t, b.JobPrices, "j1")
}

func TestFetchSurfacesErrorStatus(t *testing.T) {
	srv := bookingServer(t, http.StatusServiceUnavailable, "application/json", `{"error":"down"}`)

	repo := NewBookingRepo(NewClient(srv.URL, ""))
	_, err := repo.Fetch(context.Background(), "bk1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
