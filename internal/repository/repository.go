// Package repository defines the data-access contract between the cluster
// service and the backing analytical store, along with the mapper that
// shapes raw result rows into domain values.
package repository

import "context"

// Row is one raw result row from the query executor: a mapping from
// column name to a loosely typed value. Drivers differ in what they hand
// back (int64, float64, []byte, string, nil); the mapper owns coercion.
type Row map[string]any

// ClusterRepository is the read-only contract the cluster service depends
// on. Every method runs exactly one parameterized query and returns raw
// rows; no method ever writes to the store.
//
// Errors are returned as-is from the executor; classification into the
// application taxonomy happens in the service layer.
type ClusterRepository interface {
	// ClusterRows returns up to 50 topic-cluster rows ordered by
	// descending total search volume.
	ClusterRows(ctx context.Context) ([]Row, error)

	// InsideRows returns entities reachable from the cluster through
	// intra-cluster relationship types, ordered by descending search
	// volume with unknown volumes last.
	InsideRows(ctx context.Context, clusterID string) ([]Row, error)

	// OutsideRows returns entities reachable from the cluster through
	// cross-cluster relationship types, same ordering as InsideRows.
	OutsideRows(ctx context.Context, clusterID string) ([]Row, error)

	// EdgeRows returns every relationship where the cluster is either
	// endpoint.
	EdgeRows(ctx context.Context, clusterID string) ([]Row, error)

	// StatsRow returns the aggregate row for the cluster, or nil when the
	// cluster has no matching rows.
	StatsRow(ctx context.Context, clusterID string) (Row, error)

	// KeywordOpportunityRows returns keywords with difficulty below 50
	// and search volume above 100 that are not already linked to the
	// given cluster, at most 20 rows.
	KeywordOpportunityRows(ctx context.Context, clusterID string) ([]Row, error)

	// ContentGapRows returns the cluster's high-priority content gaps.
	ContentGapRows(ctx context.Context, clusterID string) ([]Row, error)

	// CompetitorOverlapRows returns competitors sharing at least three
	// keywords with the cluster, ordered by descending shared-keyword
	// count.
	CompetitorOverlapRows(ctx context.Context, clusterID string) ([]Row, error)
}
