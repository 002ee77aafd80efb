// Package seo defines the core domain model for the SEO knowledge graph:
// entities (clusters, pages, keywords, competitors, content gaps) and the
// typed relationships that connect them.
package seo

// EntityType identifies the kind of node in the SEO knowledge graph.
type EntityType string

const (
	EntityTypeClusterRoot    EntityType = "topic_cluster"
	EntityTypePillarPage     EntityType = "pillar_page"
	EntityTypeClusterContent EntityType = "cluster_content"
	EntityTypeKeyword        EntityType = "keyword"
	EntityTypeIntent         EntityType = "intent"
	EntityTypeCompetitor     EntityType = "competitor"
	EntityTypeContentGap     EntityType = "content_gap"
)

// IsValid reports whether t is one of the known entity types.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeClusterRoot, EntityTypePillarPage, EntityTypeClusterContent,
		EntityTypeKeyword, EntityTypeIntent, EntityTypeCompetitor, EntityTypeContentGap:
		return true
	}
	return false
}

func (t EntityType) String() string { return string(t) }

// Intent classifies the search intent behind a keyword or page.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentNavigational  Intent = "navigational"
	IntentTransactional Intent = "transactional"
	IntentCommercial    Intent = "commercial"
)

// IsValid reports whether i is a known intent. The empty intent is not
// valid; absence is expressed by leaving the field empty.
func (i Intent) IsValid() bool {
	switch i {
	case IntentInformational, IntentNavigational, IntentTransactional, IntentCommercial:
		return true
	}
	return false
}

func (i Intent) String() string { return string(i) }

// Direction records how an entity entered the graph: as the initial seed,
// through an intra-cluster relationship, or through a cross-cluster one.
type Direction string

const (
	DirectionRoot    Direction = "root"
	DirectionInside  Direction = "inside"
	DirectionOutside Direction = "outside"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionRoot, DirectionInside, DirectionOutside:
		return true
	}
	return false
}

func (d Direction) String() string { return string(d) }

// EntityMetadata is an open bag of secondary numeric attributes. Which
// attributes are present varies by entity type; nil means unknown.
type EntityMetadata struct {
	SearchVolume     *float64 `json:"searchVolume,omitempty"`
	Difficulty       *float64 `json:"difficulty,omitempty"`
	CPC              *float64 `json:"cpc,omitempty"`
	RankingPosition  *float64 `json:"ranking_position,omitempty"`
	TrafficPotential *float64 `json:"traffic_potential,omitempty"`
	SharedKeywords   *float64 `json:"shared_keywords,omitempty"`
}

// Entity is a node in the SEO knowledge graph.
//
// SearchVolume and Difficulty are pointers so that "unknown" is
// distinguishable from zero; the mapper never coerces absent metrics.
// Entities are value objects: once mapped from a result row they are
// never mutated.
type Entity struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Type         EntityType     `json:"type"`
	SearchVolume *float64       `json:"searchVolume,omitempty"`
	Difficulty   *float64       `json:"difficulty,omitempty"`
	Intent       Intent         `json:"intent,omitempty"`
	URL          string         `json:"url,omitempty"`
	HasMore      bool           `json:"hasMore"`
	Direction    Direction      `json:"direction"`
	Metadata     EntityMetadata `json:"metadata"`
}
