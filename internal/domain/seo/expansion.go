package seo

// Expansion is the result of expanding a cluster node: the entities found
// through intra-cluster relationships, the entities found through
// cross-cluster relationships, and every edge touching the cluster.
// The three slices are populated together or not at all; a failed
// sub-query yields the zero value.
type Expansion struct {
	Inside  []Entity       `json:"inside"`
	Outside []Entity       `json:"outside"`
	Edges   []Relationship `json:"edges"`
}

// IsEmpty reports whether the expansion discovered no neighbors.
func (e Expansion) IsEmpty() bool {
	return len(e.Inside) == 0 && len(e.Outside) == 0
}

// ClusterStats holds the aggregate counters shown on the dashboard for a
// selected cluster. A cluster with no matching rows yields the zero value,
// which is a valid result, not an error.
type ClusterStats struct {
	TotalSearchVolume float64 `json:"totalSearchVolume"`
	AvgDifficulty     float64 `json:"avgDifficulty"`
	ContentCount      int     `json:"contentCount"`
	KeywordCount      int     `json:"keywordCount"`
	CompetitorCount   int     `json:"competitorCount"`
	GapCount          int     `json:"gapCount"`
}
