package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seograph-backend/internal/domain/seo"
	"seograph-backend/internal/observability"
)

type stubBackend struct {
	clusters  []seo.Entity
	expansion seo.Expansion
}

func (s *stubBackend) ListClusters(ctx context.Context) ([]seo.Entity, error) {
	return s.clusters, nil
}

func (s *stubBackend) Stats(ctx context.Context, clusterID string) (seo.ClusterStats, error) {
	return seo.ClusterStats{}, nil
}

func (s *stubBackend) KeywordOpportunities(ctx context.Context, clusterID string) ([]seo.Entity, error) {
	return nil, nil
}

func (s *stubBackend) ContentGaps(ctx context.Context, clusterID string) ([]seo.Entity, error) {
	return nil, nil
}

func (s *stubBackend) CompetitorOverlap(ctx context.Context, clusterID string) ([]seo.Entity, error) {
	return nil, nil
}

func (s *stubBackend) Explore(ctx context.Context, entityID, hint string) (seo.Expansion, error) {
	return s.expansion, nil
}

func (s *stubBackend) AddToStrategy(ctx context.Context, entityID, name string) string {
	return "Added \"" + name + "\" to SEO strategy"
}

func newTestRouter(backend *stubBackend) http.Handler {
	return NewRouter(
		backend,
		backend,
		zap.NewNop(),
		observability.NewCollector("test"),
		[]string{"http://localhost:3000"},
	).Setup()
}

func TestRoutes(t *testing.T) {
	backend := &stubBackend{
		clusters: []seo.Entity{{ID: "c-1", Name: "Content Marketing"}},
		expansion: seo.Expansion{
			Inside: []seo.Entity{{ID: "p-1"}},
		},
	}
	router := newTestRouter(backend)

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	t.Run("health and readiness", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/health").Code)
		assert.Equal(t, http.StatusOK, get("/ready").Code)
	})

	t.Run("metrics endpoint is exposed", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/metrics").Code)
	})

	t.Run("cluster list", func(t *testing.T) {
		w := get("/api/v1/clusters")

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Clusters []seo.Entity `json:"clusters"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Clusters, 1)
	})

	t.Run("expand routes through the path parameter", func(t *testing.T) {
		w := get("/api/v1/clusters/c-1/expand")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"notice":"loaded"`)
	})

	t.Run("narrow expansion routes", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/clusters/c-1/stats",
			"/api/v1/clusters/c-1/opportunities",
			"/api/v1/clusters/c-1/gaps",
			"/api/v1/clusters/c-1/competitors",
		} {
			assert.Equal(t, http.StatusOK, get(target).Code, target)
		}
	})

	t.Run("request id header is set", func(t *testing.T) {
		w := get("/api/v1/clusters")

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("/api/v1/unknown").Code)
	})
}
