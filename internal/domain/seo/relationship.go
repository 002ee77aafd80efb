package seo

// RelationshipType identifies the kind of edge between two entities.
type RelationshipType string

const (
	RelationshipSemanticSimilarity RelationshipType = "semantic_similarity"
	RelationshipKeywordCluster     RelationshipType = "keyword_cluster"
	RelationshipInternalLink       RelationshipType = "internal_link"
	RelationshipTopicHierarchy     RelationshipType = "topic_hierarchy"
	RelationshipContentGap         RelationshipType = "content_gap"
	RelationshipCompetitorOverlap  RelationshipType = "competitor_overlap"
)

// IsValid reports whether t is a known relationship type.
func (t RelationshipType) IsValid() bool {
	switch t {
	case RelationshipSemanticSimilarity, RelationshipKeywordCluster,
		RelationshipInternalLink, RelationshipTopicHierarchy,
		RelationshipContentGap, RelationshipCompetitorOverlap:
		return true
	}
	return false
}

func (t RelationshipType) String() string { return string(t) }

// DefaultDescription is the templated label used when the backing store
// holds no description for an edge.
func (t RelationshipType) DefaultDescription() string {
	return string(t) + " relationship"
}

// InsideRelationshipTypes are the intra-cluster relationship types; an
// entity discovered through one of these carries DirectionInside.
var InsideRelationshipTypes = []RelationshipType{
	RelationshipKeywordCluster,
	RelationshipTopicHierarchy,
	RelationshipInternalLink,
}

// OutsideRelationshipTypes are the cross-cluster relationship types; an
// entity discovered through one of these carries DirectionOutside.
var OutsideRelationshipTypes = []RelationshipType{
	RelationshipCompetitorOverlap,
	RelationshipContentGap,
	RelationshipSemanticSimilarity,
}

// DefaultStrength is materialized for edges whose strength is absent in
// the backing store. Strength is never left unset on a mapped edge.
const DefaultStrength = 0.5

// RelationshipMetadata holds optional secondary metrics for an edge.
type RelationshipMetadata struct {
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	LinkCount       *float64 `json:"link_count,omitempty"`
	SharedKeywords  *float64 `json:"shared_keywords,omitempty"`
}

// Relationship is a directed, typed, weighted edge between two entities.
// FromID and ToID must reference entities in the same response batch or
// nodes the caller has already materialized.
type Relationship struct {
	ID          string               `json:"id"`
	FromID      string               `json:"fromId"`
	ToID        string               `json:"toId"`
	Type        RelationshipType     `json:"relationshipType"`
	Strength    float64              `json:"strength"`
	Description string               `json:"description"`
	Metadata    RelationshipMetadata `json:"metadata"`
}
