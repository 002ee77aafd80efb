package explorer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seograph-backend/internal/domain/seo"
	"seograph-backend/internal/service/cluster"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type stubExpander struct {
	mu        sync.Mutex
	expansion seo.Expansion
	err       error
	calls     int
	block     chan struct{}
}

func (s *stubExpander) Expand(ctx context.Context, clusterID string) (seo.Expansion, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return s.expansion, s.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []cluster.Event
}

func (n *recordingNotifier) Notify(ctx context.Context, event cluster.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) all() []cluster.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]cluster.Event(nil), n.events...)
}

func newTestController(expander Expander, notifier cluster.Notifier) *Controller {
	return NewController(expander, notifier, zap.NewNop(), nil)
}

func TestExplore(t *testing.T) {
	loaded := seo.Expansion{
		Inside:  []seo.Entity{{ID: "p-1"}, {ID: "kw-1"}},
		Outside: []seo.Entity{{ID: "comp-1"}},
		Edges:   []seo.Relationship{{ID: "r-1"}},
	}

	t.Run("loaded outcome carries node count", func(t *testing.T) {
		notifier := &recordingNotifier{}
		controller := newTestController(&stubExpander{expansion: loaded}, notifier)

		expansion, err := controller.Explore(context.Background(), "c-1", "Content Marketing")

		require.NoError(t, err)
		assert.Equal(t, loaded, expansion)
		events := notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, cluster.OutcomeLoaded, events[0].Outcome)
		assert.Equal(t, "c-1", events[0].EntityID)
		assert.Equal(t, 3, events[0].Count)
	})

	t.Run("empty expansion notifies empty outcome", func(t *testing.T) {
		notifier := &recordingNotifier{}
		controller := newTestController(&stubExpander{}, notifier)

		expansion, err := controller.Explore(context.Background(), "c-1", "Content Marketing")

		require.NoError(t, err)
		assert.True(t, expansion.IsEmpty())
		events := notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, cluster.OutcomeEmpty, events[0].Outcome)
		assert.Zero(t, events[0].Count)
	})

	t.Run("failure notifies and re-raises the error", func(t *testing.T) {
		fetchErr := errors.New("connection reset")
		notifier := &recordingNotifier{}
		controller := newTestController(&stubExpander{err: fetchErr}, notifier)

		expansion, err := controller.Explore(context.Background(), "c-1", "Content Marketing")

		require.ErrorIs(t, err, fetchErr)
		assert.True(t, expansion.IsEmpty())
		events := notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, cluster.OutcomeFailed, events[0].Outcome)
		assert.ErrorIs(t, events[0].Err, fetchErr)
	})

	t.Run("superseded completion is discarded", func(t *testing.T) {
		gate := make(chan struct{})
		expander := &stubExpander{expansion: loaded, block: gate}
		notifier := &recordingNotifier{}
		controller := newTestController(expander, notifier)

		results := make(chan error, 1)
		go func() {
			_, err := controller.Explore(context.Background(), "c-1", "Content Marketing")
			results <- err
		}()

		// Wait for the first request to be in flight before superseding it.
		require.Eventually(t, func() bool {
			expander.mu.Lock()
			defer expander.mu.Unlock()
			return expander.calls == 1
		}, waitFor, tick)

		expander.mu.Lock()
		expander.block = nil
		expander.mu.Unlock()

		expansion, err := controller.Explore(context.Background(), "c-1", "Content Marketing")
		require.NoError(t, err)
		assert.Equal(t, loaded, expansion)

		close(gate)
		require.ErrorIs(t, <-results, ErrSuperseded)

		// Only the winning request notified.
		events := notifier.all()
		require.Len(t, events, 1)
		assert.Equal(t, cluster.OutcomeLoaded, events[0].Outcome)
	})

	t.Run("different nodes never supersede each other", func(t *testing.T) {
		notifier := &recordingNotifier{}
		controller := newTestController(&stubExpander{expansion: loaded}, notifier)

		_, err := controller.Explore(context.Background(), "c-1", "Content Marketing")
		require.NoError(t, err)
		_, err = controller.Explore(context.Background(), "c-2", "Email Marketing")
		require.NoError(t, err)

		assert.Len(t, notifier.all(), 2)
	})
}

func TestAddToStrategy(t *testing.T) {
	controller := newTestController(&stubExpander{}, &recordingNotifier{})

	message := controller.AddToStrategy(context.Background(), "kw-1", "content strategy")

	assert.Equal(t, `Added "content strategy" to SEO strategy`, message)
}
