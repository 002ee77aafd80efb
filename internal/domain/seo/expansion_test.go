package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpansionIsEmpty(t *testing.T) {
	assert.True(t, Expansion{}.IsEmpty())
	assert.False(t, Expansion{Inside: []Entity{{ID: "p-1"}}}.IsEmpty())
	assert.False(t, Expansion{Outside: []Entity{{ID: "comp-1"}}}.IsEmpty())
	// Edges alone add no new nodes to the graph.
	assert.True(t, Expansion{Edges: []Relationship{{ID: "r-1"}}}.IsEmpty())
}

func TestEntityTypeIsValid(t *testing.T) {
	for _, et := range []EntityType{
		EntityTypeClusterRoot, EntityTypePillarPage, EntityTypeClusterContent,
		EntityTypeKeyword, EntityTypeIntent, EntityTypeCompetitor, EntityTypeContentGap,
	} {
		assert.True(t, et.IsValid(), et)
	}
	assert.False(t, EntityType("page").IsValid())
	assert.False(t, EntityType("").IsValid())
}

func TestRelationshipTypeDefaults(t *testing.T) {
	assert.Equal(t, "internal_link relationship", RelationshipInternalLink.DefaultDescription())
	assert.True(t, RelationshipSemanticSimilarity.IsValid())
	assert.False(t, RelationshipType("links_to").IsValid())
	assert.Equal(t, 0.5, DefaultStrength)
}

func TestDirectionIsValid(t *testing.T) {
	assert.True(t, DirectionRoot.IsValid())
	assert.True(t, DirectionInside.IsValid())
	assert.True(t, DirectionOutside.IsValid())
	assert.False(t, Direction("up").IsValid())
}
