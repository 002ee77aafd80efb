package sqlite

import (
	"database/sql"
	"fmt"
)

// Seed loads a small representative SEO dataset into the store: three
// topic clusters with their pages, keywords, competitors, and content
// gaps. Meant for local development and demos; Seed replaces rows with
// matching ids rather than duplicating them.
func Seed(db *sql.DB) error {
	type insert struct {
		stmt string
		rows [][]any
	}

	inserts := []insert{
		{
			stmt: `INSERT OR REPLACE INTO topic_clusters
				(id, name, total_search_volume, avg_difficulty, content_count, keyword_count)
				VALUES (?, ?, ?, ?, ?, ?)`,
			rows: [][]any{
				{"cluster-content-marketing", "Content Marketing", 50000.0, 48.5, 12, 34},
				{"cluster-email-marketing", "Email Marketing", 20000.0, 41.0, 8, 21},
				{"cluster-seo-tools", "SEO Tools", 1000.0, 62.3, 3, 9},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO seo_entities
				(id, name, type, search_volume, difficulty, intent, url)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rows: [][]any{
				{"page-cm-pillar", "The Complete Guide to Content Marketing", "pillar_page", 18000.0, 55.0, "informational", "https://example.com/content-marketing"},
				{"page-cm-calendar", "Building a Content Calendar", "cluster_content", 6400.0, 38.0, "informational", "https://example.com/content-calendar"},
				{"page-cm-repurpose", "Repurposing Content at Scale", "cluster_content", 2100.0, 33.0, "informational", "https://example.com/repurposing-content"},
				{"kw-content-strategy", "content strategy", "keyword", 9800.0, 52.0, "informational", nil},
				{"kw-content-roi", "content marketing roi", "keyword", 1900.0, 44.0, "commercial", nil},
				{"comp-hubspot", "hubspot.com", "competitor", nil, nil, nil, "https://hubspot.com"},
				{"gap-video-marketing", "Video Content Marketing", "content_gap", 8100.0, 47.0, "informational", nil},
				{"page-em-pillar", "Email Marketing Fundamentals", "pillar_page", 9100.0, 43.0, "informational", "https://example.com/email-marketing"},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO seo_relationships
				(id, from_id, to_id, relationship_type, strength, description,
				 similarity_score, link_count, shared_keywords)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rows: [][]any{
				{"rel-cm-pillar", "cluster-content-marketing", "page-cm-pillar", "topic_hierarchy", 0.95, "pillar page of the cluster", nil, 14.0, nil},
				{"rel-cm-calendar", "cluster-content-marketing", "page-cm-calendar", "topic_hierarchy", 0.8, nil, nil, 6.0, nil},
				{"rel-cm-repurpose", "cluster-content-marketing", "page-cm-repurpose", "topic_hierarchy", nil, nil, nil, 3.0, nil},
				{"rel-cm-strategy", "cluster-content-marketing", "kw-content-strategy", "keyword_cluster", 0.9, "primary keyword", nil, nil, nil},
				{"rel-cm-roi", "cluster-content-marketing", "kw-content-roi", "keyword_cluster", 0.6, nil, nil, nil, nil},
				{"rel-cm-hubspot", "cluster-content-marketing", "comp-hubspot", "competitor_overlap", 0.7, "ranks for 12 shared keywords", nil, nil, 12.0},
				{"rel-cm-gap", "cluster-content-marketing", "gap-video-marketing", "content_gap", nil, nil, 0.82, nil, nil},
				{"rel-cm-em", "cluster-content-marketing", "cluster-email-marketing", "semantic_similarity", 0.55, nil, 0.55, nil, nil},
				{"rel-pillar-calendar", "page-cm-pillar", "page-cm-calendar", "internal_link", 0.75, nil, nil, 2.0, nil},
				{"rel-em-pillar", "cluster-email-marketing", "page-em-pillar", "topic_hierarchy", 0.9, nil, nil, 8.0, nil},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO keywords
				(id, keyword, search_volume, difficulty, intent)
				VALUES (?, ?, ?, ?, ?)`,
			rows: [][]any{
				{"kwu-evergreen", "evergreen content ideas", 2400.0, 28.0, "informational"},
				{"kwu-briefs", "content brief template", 1300.0, 22.0, "informational"},
				{"kwu-audit", "content audit checklist", 880.0, 31.0, "informational"},
				{"kwu-newsletter", "newsletter growth tactics", 720.0, 26.0, "informational"},
				{"kwu-hard", "enterprise content platform", 590.0, 74.0, "commercial"},
				{"kwu-tiny", "content marketing glossary", 90.0, 12.0, "informational"},
				{"kwu-k1", "blog post ideas", 5400.0, 40.0, "informational"},
				{"kwu-k2", "content distribution", 1800.0, 37.0, "informational"},
				{"kwu-k3", "editorial workflow", 640.0, 29.0, "informational"},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO cluster_keywords (cluster_id, keyword_id) VALUES (?, ?)`,
			rows: [][]any{
				{"cluster-content-marketing", "kwu-evergreen"},
				{"cluster-content-marketing", "kwu-k1"},
				{"cluster-content-marketing", "kwu-k2"},
				{"cluster-content-marketing", "kwu-k3"},
				{"cluster-email-marketing", "kwu-newsletter"},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO content_gaps
				(id, cluster_id, topic, search_volume, difficulty, intent, priority)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rows: [][]any{
				{"cg-video", "cluster-content-marketing", "Video Content Marketing", 8100.0, 47.0, "informational", "high"},
				{"cg-podcast", "cluster-content-marketing", "Podcast Repurposing", 2900.0, 35.0, "informational", "high"},
				{"cg-low", "cluster-content-marketing", "Print Newsletters", 140.0, 18.0, "informational", "low"},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO competitors (id, domain, url) VALUES (?, ?, ?)`,
			rows: [][]any{
				{"comp-hubspot", "hubspot.com", "https://hubspot.com"},
				{"comp-buffer", "buffer.com", "https://buffer.com"},
				{"comp-niche", "tinyblog.example", nil},
			},
		},
		{
			stmt: `INSERT OR REPLACE INTO competitor_keywords (competitor_id, keyword_id) VALUES (?, ?)`,
			rows: [][]any{
				{"comp-hubspot", "kwu-evergreen"},
				{"comp-hubspot", "kwu-k1"},
				{"comp-hubspot", "kwu-k2"},
				{"comp-hubspot", "kwu-k3"},
				{"comp-buffer", "kwu-evergreen"},
				{"comp-buffer", "kwu-k1"},
				{"comp-buffer", "kwu-k2"},
				{"comp-niche", "kwu-evergreen"},
				{"comp-niche", "kwu-k1"},
			},
		},
	}

	for _, ins := range inserts {
		stmt, err := db.Prepare(ins.stmt)
		if err != nil {
			return fmt.Errorf("preparing seed statement: %w", err)
		}
		for _, row := range ins.rows {
			if _, err := stmt.Exec(row...); err != nil {
				stmt.Close()
				return fmt.Errorf("seeding row: %w", err)
			}
		}
		stmt.Close()
	}
	return nil
}
