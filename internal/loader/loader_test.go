package loader

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/snapshot"
	"github.com/mauv0809/court-finder/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func backendResult(joined bool) backend.Result {
	return backend.Result{
		Matches: []backend.Match{
			{ID: "b1", CourtID: ptr("c1"), StartTime: ptr("18:00"), EndTime: ptr("20:00"), FbGroupID: ptr("fb-1")},
			{ID: "b2", StartTime: ptr("19:00")}, // no court and no area text: dropped
		},
		Courts: []backend.Court{{ID: "c1", Name: "Sân Tiên Sơn"}},
		Groups: map[string]backend.FbGroup{},
		Joined: joined,
	}
}

func snapshotDocument() snapshot.Document {
	return snapshot.Document{
		Matches: []snapshot.Match{
			{ID: "s1", CourtID: "k1", StartTime: "17:00", EndTime: "19:00"},
			{ID: "s2", CourtID: "k1"}, // no time: dropped
		},
		Courts:   []snapshot.Court{{ID: "k1", Name: "Sân Chi Lăng"}},
		Metadata: snapshot.Metadata{TotalMatches: 2, Source: "crawler"},
	}
}

func TestLoader_Load(t *testing.T) {
	t.Run("backend data wins and joined groups are used", func(t *testing.T) {
		client := backend.NewMockClient()
		fetcher := snapshot.NewMockFetcher()
		store := catalog.New()
		metr := metrics.NewMock()
		l := New(client, fetcher, store, metr, time.Second)

		client.FetchAllFunc = func(ctx context.Context) (backend.Result, error) {
			res := backendResult(true)
			res.Groups["fb-1"] = backend.FbGroup{FbGroupID: "fb-1", Name: ptr("Cầu lông Đà Nẵng"), IsActive: true}
			return res, nil
		}
		fetcher.FetchFunc = func(ctx context.Context) (snapshot.Document, error) {
			return snapshotDocument(), nil
		}

		gen := l.Load(context.Background())

		assert.NotEmpty(t, gen.ID)
		assert.Len(t, gen.Backend, 1)
		assert.Len(t, gen.Snapshot, 1)
		assert.Equal(t, 2, gen.Dropped)
		assert.True(t, gen.BackendJoined)
		assert.Empty(t, gen.BackendWarning)
		assert.Empty(t, gen.SnapshotError)

		current := store.Current()
		assert.Equal(t, source.Backend, current.Name)
		require.Len(t, current.Slots, 1)
		require.NotNil(t, current.Slots[0].FbGroupName)
		assert.Equal(t, "Cầu lông Đà Nẵng", *current.Slots[0].FbGroupName)

		assert.Equal(t, 1, client.FetchGroupsCalls)
		assert.Equal(t, 1, metr.Loads())
		assert.Equal(t, 0, metr.BackendFallbacks())
		assert.Equal(t, "backend", metr.SelectedSource())
		assert.Equal(t, 1, metr.QualityDrops("backend"))
		assert.Equal(t, 1, metr.QualityDrops("snapshot"))
		assert.Len(t, metr.LoadDurations(), 1)
		assert.Equal(t, "crawler", store.Status().Snapshot.Source)
	})

	t.Run("every listed group is kept, not only the joined ones", func(t *testing.T) {
		client := backend.NewMockClient()
		store := catalog.New()
		l := New(client, snapshot.NewMockFetcher(), store, metrics.NewMock(), time.Second)

		client.FetchAllFunc = func(ctx context.Context) (backend.Result, error) {
			res := backendResult(true)
			res.Groups["fb-1"] = backend.FbGroup{FbGroupID: "fb-1", Name: ptr("Cầu lông Đà Nẵng"), IsActive: true}
			return res, nil
		}
		client.FetchGroupsFunc = func(ctx context.Context) ([]backend.FbGroup, error) {
			return []backend.FbGroup{
				{FbGroupID: "fb-1", Name: ptr("Cầu lông Đà Nẵng"), IsActive: true},
				{FbGroupID: "fb-2", Name: ptr("Nhóm Sơn Trà"), IsActive: true},
				{FbGroupID: "fb-3", Name: ptr("Nhóm Hải Châu"), IsActive: true},
			}, nil
		}

		gen := l.Load(context.Background())

		assert.Equal(t, 1, client.FetchGroupsCalls)
		assert.Len(t, gen.Groups, 3)
		assert.Len(t, store.Groups(), 3)
		slots := store.Current().Slots
		require.Len(t, slots, 1)
		require.NotNil(t, slots[0].FbGroupName)
		assert.Equal(t, "Cầu lông Đà Nẵng", *slots[0].FbGroupName)
	})

	t.Run("joined groups survive a failed listing", func(t *testing.T) {
		client := backend.NewMockClient()
		store := catalog.New()
		l := New(client, snapshot.NewMockFetcher(), store, metrics.NewMock(), time.Second)

		client.FetchAllFunc = func(ctx context.Context) (backend.Result, error) {
			res := backendResult(true)
			res.Groups["fb-1"] = backend.FbGroup{FbGroupID: "fb-1", IsActive: true}
			return res, nil
		}
		client.FetchGroupsFunc = func(ctx context.Context) ([]backend.FbGroup, error) {
			return nil, errors.New("error fetching groups: timeout")
		}

		gen := l.Load(context.Background())

		assert.Empty(t, gen.BackendWarning)
		assert.Len(t, gen.Groups, 1)
	})

	t.Run("groups are fetched separately when the payload has none", func(t *testing.T) {
		client := backend.NewMockClient()
		store := catalog.New()
		metr := metrics.NewMock()
		l := New(client, snapshot.NewMockFetcher(), store, metr, time.Second)

		client.FetchAllFunc = func(ctx context.Context) (backend.Result, error) {
			return backendResult(false), nil
		}
		client.FetchGroupsFunc = func(ctx context.Context) ([]backend.FbGroup, error) {
			return []backend.FbGroup{{FbGroupID: "fb-1", Name: ptr("Nhóm Sơn Trà"), IsActive: true}}, nil
		}

		l.Load(context.Background())

		assert.Equal(t, 1, client.FetchGroupsCalls)
		slots := store.Current().Slots
		require.Len(t, slots, 1)
		require.NotNil(t, slots[0].FbGroupName)
		assert.Equal(t, "Nhóm Sơn Trà", *slots[0].FbGroupName)
		assert.Len(t, store.Groups(), 1)
		assert.Equal(t, 1, metr.BackendFallbacks())
	})

	t.Run("backend failure is a warning and the snapshot is served", func(t *testing.T) {
		client := backend.NewMockClient()
		fetcher := snapshot.NewMockFetcher()
		store := catalog.New()
		metr := metrics.NewMock()
		l := New(client, fetcher, store, metr, time.Second)

		client.FetchAllFunc = func(ctx context.Context) (backend.Result, error) {
			return backend.Result{}, fmt.Errorf("%w: connection refused", backend.ErrUnavailable)
		}
		fetcher.FetchFunc = func(ctx context.Context) (snapshot.Document, error) {
			return snapshotDocument(), nil
		}

		gen := l.Load(context.Background())

		assert.Contains(t, gen.BackendWarning, "backend unavailable")
		assert.Empty(t, gen.Backend)
		assert.Equal(t, source.Snapshot, store.Current().Name)
		status := store.Status()
		assert.False(t, status.Blocking)
		assert.NotEmpty(t, status.BackendWarning)
		assert.Equal(t, 1, metr.SourceFailures("backend"))
		assert.Equal(t, 0, metr.BackendFallbacks(), "a fallback that also failed is not counted")
		assert.Equal(t, 0, client.FetchGroupsCalls)
	})

	t.Run("snapshot failure blocks and mock data is served", func(t *testing.T) {
		client := backend.NewMockClient()
		fetcher := snapshot.NewMockFetcher()
		store := catalog.New()
		metr := metrics.NewMock()
		l := New(client, fetcher, store, metr, time.Second)

		fetcher.FetchFunc = func(ctx context.Context) (snapshot.Document, error) {
			return snapshot.Document{}, fmt.Errorf("%w: received non-OK HTTP status: 404", snapshot.ErrSnapshot)
		}

		gen := l.Load(context.Background())

		assert.NotEmpty(t, gen.SnapshotError)
		assert.Equal(t, source.Mock, store.Current().Name)
		assert.Len(t, store.Current().Slots, 5)
		assert.True(t, store.Status().Blocking)
		assert.Equal(t, 1, metr.SourceFailures("snapshot"))
		assert.Equal(t, "mock", metr.SelectedSource())
	})

	t.Run("snapshot fetch is bounded by the timeout", func(t *testing.T) {
		fetcher := snapshot.NewMockFetcher()
		store := catalog.New()
		l := New(nil, fetcher, store, metrics.NewMock(), 20*time.Millisecond)

		fetcher.FetchFunc = func(ctx context.Context) (snapshot.Document, error) {
			<-ctx.Done()
			return snapshot.Document{}, fmt.Errorf("%w: %w", snapshot.ErrSnapshot, ctx.Err())
		}

		gen := l.Load(context.Background())

		assert.Contains(t, gen.SnapshotError, context.DeadlineExceeded.Error())
		assert.Empty(t, gen.BackendWarning, "a disabled backend is not a warning")
	})

	t.Run("loading flag wraps the cycle", func(t *testing.T) {
		store := catalog.NewMock()
		l := New(backend.NewMockClient(), snapshot.NewMockFetcher(), store, metrics.NewMock(), time.Second)

		l.Load(context.Background())

		assert.Equal(t, []bool{true, false}, store.SetLoadingCalls)
		require.Len(t, store.ReplaceCalls, 1)
		assert.Len(t, store.ReplaceCalls[0].Mock, 5)
	})
}

func TestLoader_Run(t *testing.T) {
	t.Run("zero interval loads once", func(t *testing.T) {
		metr := metrics.NewMock()
		l := New(nil, snapshot.NewMockFetcher(), catalog.New(), metr, time.Second)

		l.Run(context.Background(), 0)

		assert.Equal(t, 1, metr.Loads())
	})

	t.Run("reloads until the context is cancelled", func(t *testing.T) {
		metr := metrics.NewMock()
		l := New(nil, snapshot.NewMockFetcher(), catalog.New(), metr, time.Second)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			l.Run(ctx, 5*time.Millisecond)
			close(done)
		}()

		require.Eventually(t, func() bool { return metr.Loads() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}

func TestLoader_ErrorsAreNotReturned(t *testing.T) {
	client := backend.NewMockClient()
	client.FetchAllFunc = func(ctx context.Context) (backend.Result, error) {
		return backend.Result{}, errors.New("boom")
	}
	fetcher := snapshot.NewMockFetcher()
	fetcher.FetchFunc = func(ctx context.Context) (snapshot.Document, error) {
		return snapshot.Document{}, errors.New("boom")
	}
	store := catalog.New()

	assert.NotPanics(t, func() {
		New(client, fetcher, store, metrics.NewMock(), time.Second).Load(context.Background())
	})
	assert.Equal(t, source.Mock, store.Current().Name)
}
