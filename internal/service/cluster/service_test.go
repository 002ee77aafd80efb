package cluster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seograph-backend/internal/domain/seo"
	"seograph-backend/internal/repository"
	"seograph-backend/internal/repository/mocks"
	appErrors "seograph-backend/pkg/errors"
)

func newTestService(repo repository.ClusterRepository) *Service {
	return NewService(repo, zap.NewNop(), nil)
}

func TestListClusters(t *testing.T) {
	t.Run("preserves store ordering", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()
		repo.Clusters = []repository.Row{
			{"id": "c-1", "name": "Content Marketing", "type": "topic_cluster", "search_volume": 50000.0},
			{"id": "c-2", "name": "Email Marketing", "type": "topic_cluster", "search_volume": 20000.0},
			{"id": "c-3", "name": "SEO Tools", "type": "topic_cluster", "search_volume": 1000.0},
		}

		clusters, err := newTestService(repo).ListClusters(context.Background())

		require.NoError(t, err)
		require.Len(t, clusters, 3)
		assert.Equal(t, "c-1", clusters[0].ID)
		assert.Equal(t, "c-2", clusters[1].ID)
		assert.Equal(t, "c-3", clusters[2].ID)
		for _, c := range clusters {
			assert.Equal(t, seo.DirectionRoot, c.Direction)
		}
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		clusters, err := newTestService(mocks.NewMockClusterRepository()).ListClusters(context.Background())

		require.NoError(t, err)
		assert.Empty(t, clusters)
	})

	t.Run("query failure surfaces connection error", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()
		repo.FailOn("ClusterRows", errors.New("database is locked"))

		clusters, err := newTestService(repo).ListClusters(context.Background())

		assert.Nil(t, clusters)
		require.Error(t, err)
		assert.True(t, appErrors.IsConnection(err))
	})
}

func TestExpand(t *testing.T) {
	repoWithCluster := func() *mocks.MockClusterRepository {
		repo := mocks.NewMockClusterRepository()
		repo.Inside["c-1"] = []repository.Row{
			{"id": "p-1", "name": "Pillar", "type": "pillar_page", "search_volume": 18000.0},
			{"id": "kw-1", "name": "content strategy", "type": "keyword"},
		}
		repo.Outside["c-1"] = []repository.Row{
			{"id": "comp-1", "name": "hubspot.com", "type": "competitor", "has_more": int64(1)},
		}
		repo.Edges["c-1"] = []repository.Row{
			{"id": "r-1", "from_id": "c-1", "to_id": "p-1", "relationship_type": "topic_hierarchy", "strength": 0.9},
			{"id": "r-2", "from_id": "c-1", "to_id": "kw-1", "relationship_type": "keyword_cluster"},
			{"id": "r-3", "from_id": "c-1", "to_id": "comp-1", "relationship_type": "competitor_overlap"},
		}
		return repo
	}

	t.Run("maps all three result sets", func(t *testing.T) {
		expansion, err := newTestService(repoWithCluster()).Expand(context.Background(), "c-1")

		require.NoError(t, err)
		require.Len(t, expansion.Inside, 2)
		require.Len(t, expansion.Outside, 1)
		require.Len(t, expansion.Edges, 3)
		assert.Equal(t, seo.DirectionInside, expansion.Inside[0].Direction)
		assert.Equal(t, seo.DirectionOutside, expansion.Outside[0].Direction)
		assert.True(t, expansion.Outside[0].HasMore)
		assert.Equal(t, seo.DefaultStrength, expansion.Edges[1].Strength)
	})

	t.Run("is idempotent", func(t *testing.T) {
		service := newTestService(repoWithCluster())

		first, err := service.Expand(context.Background(), "c-1")
		require.NoError(t, err)
		second, err := service.Expand(context.Background(), "c-1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown cluster yields empty expansion", func(t *testing.T) {
		expansion, err := newTestService(mocks.NewMockClusterRepository()).Expand(context.Background(), "ghost")

		require.NoError(t, err)
		assert.True(t, expansion.IsEmpty())
	})

	t.Run("empty cluster id is a validation error", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()

		_, err := newTestService(repo).Expand(context.Background(), "")

		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
		assert.Zero(t, repo.Calls("InsideRows"))
	})

	t.Run("sub-queries fail together", func(t *testing.T) {
		tests := []string{"InsideRows", "OutsideRows", "EdgeRows"}
		for _, failing := range tests {
			t.Run(failing, func(t *testing.T) {
				repo := repoWithCluster()
				repo.FailOn(failing, errors.New("connection reset"))

				expansion, err := newTestService(repo).Expand(context.Background(), "c-1")

				require.Error(t, err)
				assert.True(t, appErrors.IsConnection(err))
				assert.Empty(t, expansion.Inside)
				assert.Empty(t, expansion.Outside)
				assert.Empty(t, expansion.Edges)
			})
		}
	})

	t.Run("runs all three sub-queries", func(t *testing.T) {
		repo := repoWithCluster()

		_, err := newTestService(repo).Expand(context.Background(), "c-1")

		require.NoError(t, err)
		assert.Equal(t, 1, repo.Calls("InsideRows"))
		assert.Equal(t, 1, repo.Calls("OutsideRows"))
		assert.Equal(t, 1, repo.Calls("EdgeRows"))
	})
}

func TestStats(t *testing.T) {
	t.Run("maps aggregate row", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()
		repo.Stats["c-1"] = repository.Row{
			"total_search_volume": 50000.0,
			"avg_difficulty":      48.5,
			"content_count":       int64(12),
			"keyword_count":       int64(34),
		}

		stats, err := newTestService(repo).Stats(context.Background(), "c-1")

		require.NoError(t, err)
		assert.InDelta(t, 50000, stats.TotalSearchVolume, 0.001)
		assert.Equal(t, 12, stats.ContentCount)
	})

	t.Run("missing cluster yields zero struct without error", func(t *testing.T) {
		stats, err := newTestService(mocks.NewMockClusterRepository()).Stats(context.Background(), "ghost")

		require.NoError(t, err)
		assert.Equal(t, seo.ClusterStats{}, stats)
	})

	t.Run("failure yields zero struct with typed error", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()
		repo.FailOn("StatsRow", errors.New("disk I/O error"))

		stats, err := newTestService(repo).Stats(context.Background(), "c-1")

		require.Error(t, err)
		assert.True(t, appErrors.IsConnection(err))
		assert.Equal(t, seo.ClusterStats{}, stats)
	})
}

func TestNarrowExpansions(t *testing.T) {
	t.Run("all map rows with outside direction", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()
		repo.Opportunities["c-1"] = []repository.Row{{"id": "kw-9", "name": "content brief template", "type": "keyword"}}
		repo.Gaps["c-1"] = []repository.Row{{"id": "cg-1", "name": "Video Content Marketing", "type": "content_gap"}}
		repo.Competitors["c-1"] = []repository.Row{{"id": "comp-1", "name": "hubspot.com", "type": "competitor", "has_more": int64(1)}}
		service := newTestService(repo)

		opportunities, err := service.KeywordOpportunities(context.Background(), "c-1")
		require.NoError(t, err)
		gaps, err := service.ContentGaps(context.Background(), "c-1")
		require.NoError(t, err)
		competitors, err := service.CompetitorOverlap(context.Background(), "c-1")
		require.NoError(t, err)

		require.Len(t, opportunities, 1)
		require.Len(t, gaps, 1)
		require.Len(t, competitors, 1)
		assert.Equal(t, seo.DirectionOutside, opportunities[0].Direction)
		assert.Equal(t, seo.DirectionOutside, gaps[0].Direction)
		assert.Equal(t, seo.DirectionOutside, competitors[0].Direction)
		assert.True(t, competitors[0].HasMore)
	})

	t.Run("failures are typed, never swallowed", func(t *testing.T) {
		repo := mocks.NewMockClusterRepository()
		repo.FailOn("KeywordOpportunityRows", errors.New("connection refused"))
		repo.FailOn("ContentGapRows", errors.New("connection refused"))
		repo.FailOn("CompetitorOverlapRows", errors.New("connection refused"))
		service := newTestService(repo)

		for name, call := range map[string]func() ([]seo.Entity, error){
			"opportunities": func() ([]seo.Entity, error) { return service.KeywordOpportunities(context.Background(), "c-1") },
			"gaps":          func() ([]seo.Entity, error) { return service.ContentGaps(context.Background(), "c-1") },
			"competitors":   func() ([]seo.Entity, error) { return service.CompetitorOverlap(context.Background(), "c-1") },
		} {
			t.Run(name, func(t *testing.T) {
				entities, err := call()
				assert.Nil(t, entities)
				require.Error(t, err)
				assert.True(t, appErrors.IsConnection(err))
			})
		}
	})
}
