package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const joinedJSON = `{
	"data": [
		{
			"match": {"id": "m1", "courtId": "c1", "date": "2026-02-19T00:00:00.000Z", "startTime": "18:00:00",
				"endTime": "20:00:00", "levelMin": 2.5, "levelMax": 3.0, "totalSlots": 4, "currentJoined": 1,
				"pricePerPlayer": 50000, "fbGroupId": "g-123", "createdAt": "", "updatedAt": ""},
			"court": {"id": "c1", "name": "Sân Tuyên Sơn", "district": "Hải Châu", "createdAt": "", "updatedAt": ""},
			"fbGroup": {"id": "1", "fbGroupId": "g-123", "name": "Cầu lông Đà Nẵng", "isActive": true, "crawlEnabled": true, "createdAt": "", "updatedAt": ""}
		},
		{
			"match": {"id": "m2", "courtId": "c1", "createdAt": "", "updatedAt": ""},
			"court": {"id": "c1", "name": "Sân Tuyên Sơn", "createdAt": "", "updatedAt": ""},
			"fbGroup": null
		}
	]
}`

func newTestClient(server *httptest.Server) *APIClient {
	c := NewClient(server.URL, time.Second)
	c.httpClient = server.Client()
	return c
}

func TestFetchAll_Joined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/matches/full", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, joinedJSON)
	}))
	defer server.Close()

	res, err := newTestClient(server).FetchAll(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Joined)
	require.Len(t, res.Matches, 2)
	assert.Len(t, res.Courts, 1, "courts should be de-duplicated by id")
	require.Contains(t, res.Groups, "g-123")
	assert.Equal(t, "Cầu lông Đà Nẵng", *res.Groups["g-123"].Name)
	assert.Equal(t, 50000.0, *res.Matches[0].PricePerPlayer)
	assert.Nil(t, res.Matches[1].LevelMin)
}

func TestFetchAll_FractionalNumbersDoNotRejectThePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"data": [
			{"match": {"id": "m1", "totalSlots": 4, "pricePerPlayer": 50000}, "court": null, "fbGroup": null},
			{"match": {"id": "m2", "totalSlots": 4.0, "currentJoined": 1.5, "pricePerPlayer": 37500.5},
			 "court": {"id": "c1", "name": "Sân A", "reviewCount": 3.0}, "fbGroup": null}
		]}`)
	}))
	defer server.Close()

	res, err := newTestClient(server).FetchAll(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Joined)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, 37500.5, *res.Matches[1].PricePerPlayer)
	assert.Equal(t, 4.0, *res.Matches[1].TotalSlots)
}

func TestFetchAll_FallsBackToSeparateCalls(t *testing.T) {
	var matchesHits, courtsHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/matches/full":
			http.Error(w, "not found", http.StatusNotFound)
		case "/api/matches":
			matchesHits.Add(1)
			fmt.Fprintln(w, `{"data": [{"id": "m1", "courtId": "c1", "createdAt": "", "updatedAt": ""}]}`)
		case "/api/courts":
			courtsHits.Add(1)
			fmt.Fprintln(w, `{"data": [{"id": "c1", "name": "Sân A", "createdAt": "", "updatedAt": ""}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	res, err := newTestClient(server).FetchAll(context.Background())

	require.NoError(t, err)
	assert.False(t, res.Joined)
	assert.Len(t, res.Matches, 1)
	assert.Len(t, res.Courts, 1)
	assert.Empty(t, res.Groups)
	assert.Equal(t, int32(1), matchesHits.Load())
	assert.Equal(t, int32(1), courtsHits.Load())
}

func TestFetchAll_MalformedJoinedPayloadFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/matches/full":
			fmt.Fprintln(w, `{"data": [`)
		default:
			fmt.Fprintln(w, `{"data": []}`)
		}
	}))
	defer server.Close()

	res, err := newTestClient(server).FetchAll(context.Background())

	require.NoError(t, err)
	assert.False(t, res.Joined)
	assert.Empty(t, res.Matches)
}

func TestFetchAll_BothPathsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/courts" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	res, err := newTestClient(server).FetchAll(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Empty(t, res.Matches)
}

func TestFetchAll_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c := newTestClient(server)
	c.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := c.FetchAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFetchGroups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fb-groups", r.URL.Path)
		fmt.Fprintln(w, `{"data": [{"id": "1", "fbGroupId": "g1", "isActive": true, "crawlEnabled": false, "createdAt": "", "updatedAt": ""}]}`)
	}))
	defer server.Close()

	groups, err := newTestClient(server).FetchGroups(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].FbGroupID)
	assert.True(t, groups[0].IsActive)
}
