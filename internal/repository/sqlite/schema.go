package sqlite

import "database/sql"

// createSchema creates the analytical schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Topic clusters with precomputed aggregates
		CREATE TABLE IF NOT EXISTS topic_clusters (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			total_search_volume REAL,
			avg_difficulty REAL,
			content_count INTEGER NOT NULL DEFAULT 0,
			keyword_count INTEGER NOT NULL DEFAULT 0
		);

		-- Graph nodes: pages, keywords, competitors, gaps
		CREATE TABLE IF NOT EXISTS seo_entities (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			search_volume REAL,
			difficulty REAL,
			intent TEXT,
			url TEXT
		);

		-- Graph edges: directed, typed, weighted
		CREATE TABLE IF NOT EXISTS seo_relationships (
			id TEXT PRIMARY KEY,
			from_id TEXT NOT NULL,
			to_id TEXT NOT NULL,
			relationship_type TEXT NOT NULL,
			strength REAL,
			description TEXT,
			similarity_score REAL,
			link_count REAL,
			shared_keywords REAL
		);

		CREATE INDEX IF NOT EXISTS idx_rel_from ON seo_relationships(from_id);
		CREATE INDEX IF NOT EXISTS idx_rel_to ON seo_relationships(to_id);
		CREATE INDEX IF NOT EXISTS idx_rel_type ON seo_relationships(relationship_type);

		-- Keyword universe and cluster membership
		CREATE TABLE IF NOT EXISTS keywords (
			id TEXT PRIMARY KEY,
			keyword TEXT NOT NULL,
			search_volume REAL,
			difficulty REAL,
			intent TEXT
		);

		CREATE TABLE IF NOT EXISTS cluster_keywords (
			cluster_id TEXT NOT NULL,
			keyword_id TEXT NOT NULL,
			PRIMARY KEY (cluster_id, keyword_id)
		);

		-- Content gaps per cluster
		CREATE TABLE IF NOT EXISTS content_gaps (
			id TEXT PRIMARY KEY,
			cluster_id TEXT NOT NULL,
			topic TEXT NOT NULL,
			search_volume REAL,
			difficulty REAL,
			intent TEXT,
			priority TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_gaps_cluster ON content_gaps(cluster_id);

		-- Competitor domains and their ranking keywords
		CREATE TABLE IF NOT EXISTS competitors (
			id TEXT PRIMARY KEY,
			domain TEXT NOT NULL,
			url TEXT
		);

		CREATE TABLE IF NOT EXISTS competitor_keywords (
			competitor_id TEXT NOT NULL,
			keyword_id TEXT NOT NULL,
			PRIMARY KEY (competitor_id, keyword_id)
		);
	`

	_, err := db.Exec(schema)
	return err
}
