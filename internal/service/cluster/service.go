// Package cluster implements the cluster data service: listing topic
// clusters, expanding a cluster into its inside/outside neighborhoods,
// computing aggregate statistics, and the narrower opportunity, gap, and
// competitor queries.
//
// Every operation is a stateless, idempotent read. The service is safe to
// share across concurrent callers without locking. Failures are never
// swallowed: each operation returns a typed error so callers can tell
// "fetch failed" from "fetch succeeded, zero rows".
package cluster

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"seograph-backend/internal/domain/seo"
	"seograph-backend/internal/observability"
	"seograph-backend/internal/repository"
	appErrors "seograph-backend/pkg/errors"
)

// Service orchestrates the analytical queries behind the dashboard. It
// depends on the repository for raw rows and on the mapper for shaping;
// it is always injected explicitly, never reached through a global.
type Service struct {
	repo    repository.ClusterRepository
	logger  *zap.Logger
	metrics *observability.Collector
}

// NewService creates a cluster data service.
func NewService(repo repository.ClusterRepository, logger *zap.Logger, metrics *observability.Collector) *Service {
	return &Service{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// ListClusters returns up to 50 cluster-root entities ordered by
// descending search volume. An empty slice with a nil error means the
// store genuinely holds no clusters.
func (s *Service) ListClusters(ctx context.Context) ([]seo.Entity, error) {
	started := time.Now()
	rows, err := s.repo.ClusterRows(ctx)
	s.metrics.ObserveQuery("list_clusters", started, err)
	if err != nil {
		s.logger.Error("failed to list topic clusters", zap.Error(err))
		return nil, appErrors.NewConnection("list_clusters", "querying topic clusters", err)
	}

	clusters := make([]seo.Entity, 0, len(rows))
	for _, row := range rows {
		clusters = append(clusters, repository.EntityFromRow(row, seo.DirectionRoot))
	}
	return clusters, nil
}

// Expand fetches a cluster's inside neighborhood, outside neighborhood,
// and connecting edges. The three sub-queries run concurrently and fail
// together: if any errs, the whole expansion reports the all-empty triple
// plus the first error, never a mix of fetched and unfetched keys.
func (s *Service) Expand(ctx context.Context, clusterID string) (seo.Expansion, error) {
	if clusterID == "" {
		return seo.Expansion{}, appErrors.NewValidation("cluster id is required")
	}

	started := time.Now()

	var (
		wg sync.WaitGroup

		insideRows  []repository.Row
		outsideRows []repository.Row
		edgeRows    []repository.Row

		insideErr  error
		outsideErr error
		edgeErr    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		insideRows, insideErr = s.repo.InsideRows(ctx, clusterID)
	}()
	go func() {
		defer wg.Done()
		outsideRows, outsideErr = s.repo.OutsideRows(ctx, clusterID)
	}()
	go func() {
		defer wg.Done()
		edgeRows, edgeErr = s.repo.EdgeRows(ctx, clusterID)
	}()
	wg.Wait()

	err := firstError(insideErr, outsideErr, edgeErr)
	s.metrics.ObserveQuery("expand_cluster", started, err)
	if err != nil {
		s.logger.Error("failed to expand cluster",
			zap.String("clusterID", clusterID),
			zap.Error(err),
		)
		return seo.Expansion{}, appErrors.NewConnection("expand_cluster", "querying cluster neighborhood", err)
	}

	expansion := seo.Expansion{
		Inside:  make([]seo.Entity, 0, len(insideRows)),
		Outside: make([]seo.Entity, 0, len(outsideRows)),
		Edges:   make([]seo.Relationship, 0, len(edgeRows)),
	}
	for _, row := range insideRows {
		expansion.Inside = append(expansion.Inside, repository.EntityFromRow(row, seo.DirectionInside))
	}
	for _, row := range outsideRows {
		expansion.Outside = append(expansion.Outside, repository.EntityFromRow(row, seo.DirectionOutside))
	}
	for _, row := range edgeRows {
		expansion.Edges = append(expansion.Edges, repository.RelationshipFromRow(row))
	}
	return expansion, nil
}

// Stats returns the aggregate counters for a cluster. A cluster with no
// matching rows yields the all-zero struct with a nil error; only a query
// failure produces an error, alongside the zero struct.
func (s *Service) Stats(ctx context.Context, clusterID string) (seo.ClusterStats, error) {
	started := time.Now()
	row, err := s.repo.StatsRow(ctx, clusterID)
	s.metrics.ObserveQuery("cluster_stats", started, err)
	if err != nil {
		s.logger.Error("failed to fetch cluster stats",
			zap.String("clusterID", clusterID),
			zap.Error(err),
		)
		return seo.ClusterStats{}, appErrors.NewConnection("cluster_stats", "querying cluster statistics", err)
	}
	return repository.StatsFromRow(row), nil
}

// KeywordOpportunities returns keywords with difficulty below 50 and
// search volume above 100 that are not already linked to the cluster.
func (s *Service) KeywordOpportunities(ctx context.Context, clusterID string) ([]seo.Entity, error) {
	return s.outsideEntities(ctx, "keyword_opportunities", clusterID, s.repo.KeywordOpportunityRows)
}

// ContentGaps returns the cluster's high-priority content gaps.
func (s *Service) ContentGaps(ctx context.Context, clusterID string) ([]seo.Entity, error) {
	return s.outsideEntities(ctx, "content_gaps", clusterID, s.repo.ContentGapRows)
}

// CompetitorOverlap returns competitors sharing at least three keywords
// with the cluster, strongest overlap first. Competitors always report
// hasMore: their keyword relationships are never fully explored.
func (s *Service) CompetitorOverlap(ctx context.Context, clusterID string) ([]seo.Entity, error) {
	return s.outsideEntities(ctx, "competitor_overlap", clusterID, s.repo.CompetitorOverlapRows)
}

// outsideEntities runs one narrower expansion query and maps its rows
// with the outside direction.
func (s *Service) outsideEntities(
	ctx context.Context,
	operation, clusterID string,
	fetch func(context.Context, string) ([]repository.Row, error),
) ([]seo.Entity, error) {
	started := time.Now()
	rows, err := fetch(ctx, clusterID)
	s.metrics.ObserveQuery(operation, started, err)
	if err != nil {
		s.logger.Error("narrow expansion query failed",
			zap.String("operation", operation),
			zap.String("clusterID", clusterID),
			zap.Error(err),
		)
		return nil, appErrors.NewConnection(operation, "querying "+operation, err)
	}

	entities := make([]seo.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, repository.EntityFromRow(row, seo.DirectionOutside))
	}
	return entities, nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
