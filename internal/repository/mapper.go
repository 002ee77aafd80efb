package repository

import (
	"github.com/spf13/cast"

	"seograph-backend/internal/domain/seo"
)

// EntityFromRow shapes one raw result row into an Entity. The row must
// carry at least id and name; everything else is optional. Optional
// numeric metrics pass through untouched: an absent or NULL column maps
// to nil, never to zero. Mapping itself never fails; required-field
// presence is the query author's contract.
func EntityFromRow(row Row, direction seo.Direction) seo.Entity {
	volume := optionalFloat(row, "search_volume")
	difficulty := optionalFloat(row, "difficulty")

	return seo.Entity{
		ID:           cast.ToString(row["id"]),
		Name:         cast.ToString(row["name"]),
		Type:         seo.EntityType(cast.ToString(row["type"])),
		SearchVolume: volume,
		Difficulty:   difficulty,
		Intent:       seo.Intent(cast.ToString(row["intent"])),
		URL:          cast.ToString(row["url"]),
		HasMore:      cast.ToBool(row["has_more"]),
		Direction:    direction,
		Metadata: seo.EntityMetadata{
			SearchVolume:     volume,
			Difficulty:       difficulty,
			CPC:              optionalFloat(row, "cpc"),
			RankingPosition:  optionalFloat(row, "ranking_position"),
			TrafficPotential: optionalFloat(row, "traffic_potential"),
			SharedKeywords:   optionalFloat(row, "shared_keywords"),
		},
	}
}

// RelationshipFromRow shapes one raw result row into a Relationship.
// Strength is always materialized: an absent or NULL strength becomes
// DefaultStrength. An absent description becomes the templated label
// derived from the relationship type.
func RelationshipFromRow(row Row) seo.Relationship {
	relType := seo.RelationshipType(cast.ToString(row["relationship_type"]))

	strength := seo.DefaultStrength
	if s := optionalFloat(row, "strength"); s != nil {
		strength = *s
	}

	description := cast.ToString(row["description"])
	if description == "" {
		description = relType.DefaultDescription()
	}

	return seo.Relationship{
		ID:          cast.ToString(row["id"]),
		FromID:      cast.ToString(row["from_id"]),
		ToID:        cast.ToString(row["to_id"]),
		Type:        relType,
		Strength:    strength,
		Description: description,
		Metadata: seo.RelationshipMetadata{
			SimilarityScore: optionalFloat(row, "similarity_score"),
			LinkCount:       optionalFloat(row, "link_count"),
			SharedKeywords:  optionalFloat(row, "shared_keywords"),
		},
	}
}

// StatsFromRow shapes an aggregate row into ClusterStats. Missing or NULL
// counters default to zero; a nil row yields the zero struct.
func StatsFromRow(row Row) seo.ClusterStats {
	if row == nil {
		return seo.ClusterStats{}
	}
	return seo.ClusterStats{
		TotalSearchVolume: cast.ToFloat64(row["total_search_volume"]),
		AvgDifficulty:     cast.ToFloat64(row["avg_difficulty"]),
		ContentCount:      cast.ToInt(row["content_count"]),
		KeywordCount:      cast.ToInt(row["keyword_count"]),
		CompetitorCount:   cast.ToInt(row["competitor_count"]),
		GapCount:          cast.ToInt(row["gap_count"]),
	}
}

// optionalFloat reads a numeric column that distinguishes "unknown" from
// zero. Absent and NULL both map to nil.
func optionalFloat(row Row, column string) *float64 {
	v, ok := row[column]
	if !ok || v == nil {
		return nil
	}
	f := cast.ToFloat64(v)
	return &f
}
