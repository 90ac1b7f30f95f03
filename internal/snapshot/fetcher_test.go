package snapshot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentJSON = `{
	"matches": [
		{"id": "s1", "courtId": "c1", "courtName": "Sân Chi Lăng", "date": "2026-03-02", "startTime": "18:00",
		 "endTime": "20:00", "skillLevel": "intermediate", "playersNeeded": 2, "pricePerPerson": 40000,
		 "status": "open", "contactPhone": "0905123456", "contactName": "Anh Nam"}
	],
	"courts": [
		{"id": "c1", "name": "Sân Chi Lăng", "address": "1 Chi Lăng", "city": "Đà Nẵng", "district": "Hải Châu",
		 "rating": 4.5, "facilities": ["Gửi xe"], "phone": "0905000000"}
	],
	"metadata": {"totalMatches": 1, "totalCourts": 1, "lastUpdated": "2026-03-01T10:00:00Z", "source": "crawler"}
}`

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, documentJSON)
	}))
	defer server.Close()

	doc, err := NewHTTPFetcher(server.URL+"/parsed-matches.json", time.Second).Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, doc.Matches, 1)
	assert.Equal(t, "intermediate", *doc.Matches[0].SkillLevel)
	assert.Equal(t, 2.0, *doc.Matches[0].PlayersNeeded)
	assert.Equal(t, "crawler", doc.Metadata.Source)
	assert.Contains(t, doc.CourtsByID(), "c1")
}

func TestHTTPFetcher_Errors(t *testing.T) {
	t.Run("non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		_, err := NewHTTPFetcher(server.URL, time.Second).Fetch(context.Background())
		assert.ErrorIs(t, err, ErrSnapshot)
	})

	t.Run("malformed document", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `{"matches": [}`)
		}))
		defer server.Close()

		_, err := NewHTTPFetcher(server.URL, time.Second).Fetch(context.Background())
		assert.ErrorIs(t, err, ErrSnapshot)
	})
}

func TestFileFetcher_FractionalNumbers(t *testing.T) {
	const doc = `{
		"matches": [
			{"id": "s1", "courtId": "c1", "startTime": "18:00", "endTime": "20:00", "playersNeeded": 2.0, "pricePerPerson": 37500.5},
			{"id": "s2", "courtId": "c1", "startTime": "19:00", "endTime": "21:00", "maxPlayers": 4, "currentPlayers": 1}
		],
		"courts": [{"id": "c1", "name": "Sân Chi Lăng", "totalReviews": 12.0}],
		"metadata": {"totalMatches": 2}
	}`
	path := filepath.Join(t.TempDir(), "parsed-matches.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	got, err := FileFetcher{Path: path}.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Matches, 2)
	assert.Equal(t, 37500.5, *got.Matches[0].PricePerPerson)
	assert.Equal(t, 12.0, got.Courts[0].TotalReviews)
}

func TestFileFetcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parsed-matches.json")
	require.NoError(t, os.WriteFile(path, []byte(documentJSON), 0o600))

	doc, err := FileFetcher{Path: path}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Metadata.TotalMatches)

	_, err = FileFetcher{Path: filepath.Join(t.TempDir(), "missing.json")}.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSnapshot)
}
