// Package mocks provides an in-memory ClusterRepository for service and
// handler tests.
package mocks

import (
	"context"
	"sync"

	"seograph-backend/internal/repository"
)

// MockClusterRepository serves canned rows per operation and can be told
// to fail specific operations. Safe for concurrent use so expansion
// tests can exercise the fan-out path.
type MockClusterRepository struct {
	mu sync.Mutex

	Clusters      []repository.Row
	Inside        map[string][]repository.Row
	Outside       map[string][]repository.Row
	Edges         map[string][]repository.Row
	Stats         map[string]repository.Row
	Opportunities map[string][]repository.Row
	Gaps          map[string][]repository.Row
	Competitors   map[string][]repository.Row

	failures map[string]error
	calls    map[string]int
}

// NewMockClusterRepository creates an empty mock.
func NewMockClusterRepository() *MockClusterRepository {
	return &MockClusterRepository{
		Inside:        make(map[string][]repository.Row),
		Outside:       make(map[string][]repository.Row),
		Edges:         make(map[string][]repository.Row),
		Stats:         make(map[string]repository.Row),
		Opportunities: make(map[string][]repository.Row),
		Gaps:          make(map[string][]repository.Row),
		Competitors:   make(map[string][]repository.Row),
		failures:      make(map[string]error),
		calls:         make(map[string]int),
	}
}

// FailOn makes the named operation return err on every call.
func (m *MockClusterRepository) FailOn(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[operation] = err
}

// Calls returns how many times the named operation was invoked.
func (m *MockClusterRepository) Calls(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[operation]
}

func (m *MockClusterRepository) enter(operation string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[operation]++
	return m.failures[operation]
}

func (m *MockClusterRepository) ClusterRows(ctx context.Context) ([]repository.Row, error) {
	if err := m.enter("ClusterRows"); err != nil {
		return nil, err
	}
	return m.Clusters, nil
}

func (m *MockClusterRepository) InsideRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	if err := m.enter("InsideRows"); err != nil {
		return nil, err
	}
	return m.Inside[clusterID], nil
}

func (m *MockClusterRepository) OutsideRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	if err := m.enter("OutsideRows"); err != nil {
		return nil, err
	}
	return m.Outside[clusterID], nil
}

func (m *MockClusterRepository) EdgeRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	if err := m.enter("EdgeRows"); err != nil {
		return nil, err
	}
	return m.Edges[clusterID], nil
}

func (m *MockClusterRepository) StatsRow(ctx context.Context, clusterID string) (repository.Row, error) {
	if err := m.enter("StatsRow"); err != nil {
		return nil, err
	}
	return m.Stats[clusterID], nil
}

func (m *MockClusterRepository) KeywordOpportunityRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	if err := m.enter("KeywordOpportunityRows"); err != nil {
		return nil, err
	}
	return m.Opportunities[clusterID], nil
}

func (m *MockClusterRepository) ContentGapRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	if err := m.enter("ContentGapRows"); err != nil {
		return nil, err
	}
	return m.Gaps[clusterID], nil
}

func (m *MockClusterRepository) CompetitorOverlapRows(ctx context.Context, clusterID string) ([]repository.Row, error) {
	if err := m.enter("CompetitorOverlapRows"); err != nil {
		return nil, err
	}
	return m.Competitors[clusterID], nil
}
