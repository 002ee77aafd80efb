package sqlite

import (
	"context"

	"seograph-backend/internal/repository"
)

// ClusterRows returns the dropdown's cluster list: up to 50 topic
// clusters ordered by descending total search volume.
func (s *Store) ClusterRows(ctx context.Context) ([]repository.Row, error) {
	const stmt = `
		SELECT
			id,
			name,
			'topic_cluster' AS type,
			total_search_volume AS search_volume,
			avg_difficulty AS difficulty,
			'informational' AS intent,
			NULL AS url,
			CASE WHEN content_count > 0 OR keyword_count > 0 THEN 1 ELSE 0 END AS has_more
		FROM topic_clusters
		ORDER BY total_search_volume DESC
		LIMIT 50
	`
	return s.query(ctx, "list_clusters", stmt)
}

// InsideRows returns entities reachable from the cluster through
// intra-cluster relationship types. has_more is a snapshot: whether the
// entity has at least one outgoing relationship of any type.
func (s *Store) InsideRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	const stmt = `
		SELECT
			e.id,
			e.name,
			e.type,
			e.search_volume,
			e.difficulty,
			e.intent,
			e.url,
			CASE WHEN COUNT(r2.to_id) > 0 THEN 1 ELSE 0 END AS has_more
		FROM seo_entities e
		JOIN seo_relationships r ON r.to_id = e.id
		LEFT JOIN seo_relationships r2 ON r2.from_id = e.id
		WHERE r.from_id = ?
			AND r.relationship_type IN ('keyword_cluster', 'topic_hierarchy', 'internal_link')
			AND e.type IN ('pillar_page', 'cluster_content', 'keyword')
		GROUP BY e.id, e.name, e.type, e.search_volume, e.difficulty, e.intent, e.url
		ORDER BY e.search_volume IS NULL, e.search_volume DESC
	`
	return s.query(ctx, "inside_neighborhood", stmt, clusterID)
}

// OutsideRows returns entities reachable from the cluster through
// cross-cluster relationship types.
func (s *Store) OutsideRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	const stmt = `
		SELECT
			e.id,
			e.name,
			e.type,
			e.search_volume,
			e.difficulty,
			e.intent,
			e.url,
			CASE WHEN COUNT(r2.to_id) > 0 THEN 1 ELSE 0 END AS has_more
		FROM seo_entities e
		JOIN seo_relationships r ON r.to_id = e.id
		LEFT JOIN seo_relationships r2 ON r2.from_id = e.id
		WHERE r.from_id = ?
			AND r.relationship_type IN ('competitor_overlap', 'content_gap', 'semantic_similarity')
			AND e.type IN ('competitor', 'content_gap')
		GROUP BY e.id, e.name, e.type, e.search_volume, e.difficulty, e.intent, e.url
		ORDER BY e.search_volume IS NULL, e.search_volume DESC
	`
	return s.query(ctx, "outside_neighborhood", stmt, clusterID)
}

// EdgeRows returns every relationship where the cluster is either
// endpoint. Strength, description, and the metric columns pass through
// as stored, NULLs included; defaulting is the mapper's job.
func (s *Store) EdgeRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	const stmt = `
		SELECT
			r.id,
			r.from_id,
			r.to_id,
			r.relationship_type,
			r.strength,
			r.description,
			r.similarity_score,
			r.link_count,
			r.shared_keywords
		FROM seo_relationships r
		WHERE r.from_id = ? OR r.to_id = ?
	`
	return s.query(ctx, "cluster_edges", stmt, clusterID, clusterID)
}

// StatsRow returns the aggregate row for the cluster, or nil when the
// cluster has no matching rows.
func (s *Store) StatsRow(ctx context.Context, clusterID string) (repository.Row, error) {
	const stmt = `
		SELECT
			tc.total_search_volume,
			tc.avg_difficulty,
			tc.content_count,
			tc.keyword_count,
			COUNT(DISTINCT comp.id) AS competitor_count,
			COUNT(DISTINCT gaps.id) AS gap_count
		FROM topic_clusters tc
		LEFT JOIN seo_relationships comp_rel
			ON comp_rel.from_id = tc.id AND comp_rel.relationship_type = 'competitor_overlap'
		LEFT JOIN seo_entities comp
			ON comp.id = comp_rel.to_id AND comp.type = 'competitor'
		LEFT JOIN content_gaps gaps ON gaps.cluster_id = tc.id
		WHERE tc.id = ?
		GROUP BY tc.id, tc.total_search_volume, tc.avg_difficulty, tc.content_count, tc.keyword_count
	`
	rows, err := s.query(ctx, "cluster_stats", stmt, clusterID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// KeywordOpportunityRows returns low-difficulty, non-trivial-volume
// keywords not already linked to the given cluster. The NOT EXISTS guard
// excludes a keyword linked to this cluster even when it is also linked
// elsewhere.
func (s *Store) KeywordOpportunityRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	const stmt = `
		SELECT
			k.id,
			k.keyword AS name,
			'keyword' AS type,
			k.search_volume,
			k.difficulty,
			k.intent,
			NULL AS url,
			0 AS has_more
		FROM keywords k
		WHERE k.difficulty < 50
			AND k.search_volume > 100
			AND NOT EXISTS (
				SELECT 1 FROM cluster_keywords ck
				WHERE ck.keyword_id = k.id AND ck.cluster_id = ?
			)
		ORDER BY k.search_volume DESC, k.difficulty ASC
		LIMIT 20
	`
	return s.query(ctx, "keyword_opportunities", stmt, clusterID)
}

// ContentGapRows returns the cluster's high-priority content gaps.
func (s *Store) ContentGapRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	const stmt = `
		SELECT
			cg.id,
			cg.topic AS name,
			'content_gap' AS type,
			cg.search_volume,
			cg.difficulty,
			cg.intent,
			NULL AS url,
			0 AS has_more
		FROM content_gaps cg
		WHERE cg.cluster_id = ? AND cg.priority = 'high'
		ORDER BY cg.search_volume DESC
	`
	return s.query(ctx, "content_gaps", stmt, clusterID)
}

// CompetitorOverlapRows returns competitors sharing at least three
// keywords with the cluster. Competitors always report has_more: they are
// assumed to have further unexplored keyword relationships.
func (s *Store) CompetitorOverlapRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	const stmt = `
		SELECT
			c.id,
			c.domain AS name,
			'competitor' AS type,
			NULL AS search_volume,
			NULL AS difficulty,
			NULL AS intent,
			c.url,
			1 AS has_more,
			COUNT(DISTINCT ck.keyword_id) AS shared_keywords
		FROM competitors c
		JOIN competitor_keywords ck ON ck.competitor_id = c.id
		JOIN cluster_keywords clk ON clk.keyword_id = ck.keyword_id
		WHERE clk.cluster_id = ?
		GROUP BY c.id, c.domain, c.url
		HAVING COUNT(DISTINCT ck.keyword_id) >= 3
		ORDER BY COUNT(DISTINCT ck.keyword_id) DESC
	`
	return s.query(ctx, "competitor_overlap", stmt, clusterID)
}
