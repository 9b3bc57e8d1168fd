package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrec/internal/config"
	"travelrec/internal/models"
	"travelrec/internal/testutil"
)

func TestStore_LookupBeforeLoad(t *testing.T) {
	store := NewStore(testutil.NewStaticSource(testutil.SampleDataset))

	assert.Equal(t, StateUninitialized, store.State())
	assert.Nil(t, store.Snapshot())

	got := store.Lookup(models.CategoryBeaches)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_LoadThenLookupRoundTrip(t *testing.T) {
	store := NewStore(testutil.NewStaticSource(testutil.SampleDataset))

	ds, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ds)
	assert.Equal(t, StateLoaded, store.State())
	assert.Equal(t, 5, ds.Total())

	beaches := store.Lookup(models.CategoryBeaches)
	require.Len(t, beaches, 2)
	assert.Equal(t, "Bora Bora", beaches[0].Name)
	assert.Equal(t, "Copacabana Beach", beaches[1].Name)
	assert.Equal(t, ds.Destinations(models.CategoryBeaches), beaches)
}

func TestStore_LookupReturnsCopy(t *testing.T) {
	store := NewStore(testutil.NewStaticSource(testutil.SampleDataset))
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	first := store.Lookup(models.CategoryTemples)
	first[0].Name = "mutated"

	assert.Equal(t, "Angkor Wat", store.Lookup(models.CategoryTemples)[0].Name)
}

func TestStore_FailedReloadDropsPreviousDataset(t *testing.T) {
	source := testutil.NewStaticSource(testutil.SampleDataset)
	store := NewStore(source)

	_, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, store.Lookup(models.CategoryBeaches))

	source.Set("", errors.New("connection refused"))
	ds, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, ds)

	assert.Equal(t, StateFailed, store.State())
	assert.Nil(t, store.Snapshot())
	assert.Empty(t, store.Lookup(models.CategoryBeaches))
	assert.Equal(t, 2, source.Calls(), "no automatic retry")
}

func TestStore_ParseErrorLeavesDatasetAbsent(t *testing.T) {
	store := NewStore(testutil.NewStaticSource(`{"beaches": [`))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrInvalidDataset)
	assert.Equal(t, StateFailed, store.State())
	assert.Empty(t, store.Lookup(models.CategoryBeaches))
}

func TestStore_SuccessfulReloadReplacesWholesale(t *testing.T) {
	source := testutil.NewStaticSource(testutil.SampleDataset)
	store := NewStore(source)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	source.Set(`{"temples": [{"name": "Borobudur"}]}`, nil)
	_, err = store.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, store.Lookup(models.CategoryBeaches), "no partial merge")
	temples := store.Lookup(models.CategoryTemples)
	require.Len(t, temples, 1)
	assert.Equal(t, "Borobudur", temples[0].Name)
}

func TestStore_ConcurrentReadersDuringLoad(t *testing.T) {
	store := NewStore(testutil.NewStaticSource(testutil.SampleDataset))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := len(store.Lookup(models.CategoryBeaches))
				if n != 0 && n != 2 {
					t.Errorf("observed partial dataset with %d beaches", n)
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		_, err := store.Load(context.Background())
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestParse_ToleratesShapeDeviations(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     map[models.Category]int
	}{
		{
			name:     "missing categories",
			document: `{"beaches": [{"name": "Maldives"}]}`,
			want:     map[models.Category]int{models.CategoryBeaches: 1},
		},
		{
			name:     "category is not an array",
			document: `{"beaches": 5, "temples": [{"name": "Angkor Wat"}]}`,
			want:     map[models.Category]int{models.CategoryTemples: 1},
		},
		{
			name:     "unknown keys are ignored",
			document: `{"islands": [{"name": "Bali"}], "countries": [{"name": "Japan", "cities": []}]}`,
			want:     map[models.Category]int{models.CategoryCountries: 1},
		},
		{
			name:     "wrongly typed field keeps the category",
			document: `{"beaches": [{"name": "Bora Bora"}, {"name": "Maldives", "timezone": 5}]}`,
			want:     map[models.Category]int{models.CategoryBeaches: 2},
		},
		{
			name:     "non-object records are skipped",
			document: `{"temples": [null, 7, {"name": "Angkor Wat"}, "Taj Mahal"]}`,
			want:     map[models.Category]int{models.CategoryTemples: 1},
		},
		{
			name:     "empty document",
			document: `{}`,
			want:     map[models.Category]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.document))
			require.NoError(t, err)
			for _, c := range models.Categories {
				assert.Len(t, got[c], tt.want[c], "category %s", c)
			}
		})
	}
}

func TestParse_WronglyTypedFields(t *testing.T) {
	got, err := Parse([]byte(`{"beaches": [
		{"name": 42, "description": ["x"], "imageUrl": "a.jpg"},
		{"name": "Maldives", "timezone": 5},
		{"name": "Goa", "timezone": null},
		{"name": "Bali", "timezone": "Asia/Makassar"}
	]}`))
	require.NoError(t, err)

	beaches := got[models.CategoryBeaches]
	require.Len(t, beaches, 4)
	assert.Equal(t, models.Destination{ImageURL: "a.jpg"}, beaches[0])
	assert.Equal(t, "Maldives", beaches[1].Name)
	assert.True(t, beaches[1].HasTimezone(), "a non-string timezone still counts as set")
	assert.Equal(t, "5", beaches[1].Timezone)
	assert.False(t, beaches[2].HasTimezone())
	assert.Equal(t, "Asia/Makassar", beaches[3].Timezone)
}

func TestParse_RejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/travel_recommendation_api.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(testutil.SampleDataset))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("ok", func(t *testing.T) {
		store := NewStore(NewSource(srv.URL+"/travel_recommendation_api.json", srv.Client()))
		ds, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, ds.Total())
	})

	t.Run("non-2xx is a load failure", func(t *testing.T) {
		store := NewStore(NewSource(srv.URL+"/missing.json", srv.Client()))
		_, err := store.Load(context.Background())
		require.ErrorIs(t, err, ErrFetchFailed)
		assert.Equal(t, StateFailed, store.State())
	})
}

func TestHTTPSource_SlowSourceLoadsWithDefaultConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testutil.SampleDataset))
	}))
	defer srv.Close()

	t.Setenv("DATASET_TIMEOUT", "")
	t.Setenv("DATASET_TOKEN_URL", "")
	t.Setenv("DATASET_CLIENT_ID", "")

	t.Run("default waits for the fetch", func(t *testing.T) {
		cfg := config.Load()
		client := NewHTTPClient(context.Background(), cfg)
		assert.Zero(t, client.Timeout)

		store := NewStore(NewSource(srv.URL, client))
		ds, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StateLoaded, store.State())
		assert.Equal(t, 5, ds.Total())
	})

	t.Run("explicit timeout bounds the fetch", func(t *testing.T) {
		t.Setenv("DATASET_TIMEOUT", "100ms")
		cfg := config.Load()

		store := NewStore(NewSource(srv.URL, NewHTTPClient(context.Background(), cfg)))
		_, err := store.Load(context.Background())
		require.ErrorIs(t, err, ErrFetchFailed)
		assert.Equal(t, StateFailed, store.State())
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(testutil.SampleDataset), 0o600))

	src := NewSource(path, nil)
	_, isFile := src.(*FileSource)
	require.True(t, isFile)

	data, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, testutil.SampleDataset, string(data))

	_, err = NewSource(filepath.Join(dir, "nope.json"), nil).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestNewSource_PicksHTTPForURLs(t *testing.T) {
	_, isHTTP := NewSource("HTTPS://example.com/data.json", nil).(*HTTPSource)
	assert.True(t, isHTTP)

	src := NewSource("file:///tmp/data.json", nil)
	assert.Equal(t, "/tmp/data.json", src.Location())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "failed", StateFailed.String())
}
