package runtime

import (
	"chat-relay/domain"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	peer := domain.PeerAddress{Host: "10.0.0.5", Port: 4000}

	// Given no peer is known
	req.Zero(registry.Len())

	// When the same peer registers twice
	req.True(registry.Register(peer))
	req.False(registry.Register(peer))

	// Then membership is unchanged by the second call
	req.Equal(1, registry.Len())
	req.Equal([]domain.PeerAddress{peer}, registry.Snapshot())
	req.True(registry.Contains(peer))
}

func TestRegistry_Snapshot_Sorted(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	peers := []domain.PeerAddress{
		{Host: "10.0.0.7", Port: 1},
		{Host: "10.0.0.5", Port: 4001},
		{Host: "10.0.0.5", Port: 4000},
	}
	for _, p := range peers {
		registry.Register(p)
	}

	req.Equal([]domain.PeerAddress{
		{Host: "10.0.0.5", Port: 4000},
		{Host: "10.0.0.5", Port: 4001},
		{Host: "10.0.0.7", Port: 1},
	}, registry.Snapshot())
}

func TestRegistry_Snapshot_IsACopy(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Register(domain.PeerAddress{Host: "10.0.0.5", Port: 4000})

	// Given a snapshot taken before a new registration
	snapshot := registry.Snapshot()

	// When another peer registers
	registry.Register(domain.PeerAddress{Host: "10.0.0.6", Port: 4000})

	// Then the earlier snapshot is untouched
	req.Len(snapshot, 1)
	req.Len(registry.Snapshot(), 2)
}

func TestRegistry_ConcurrentRegisterAndSnapshot(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			registry.Register(domain.PeerAddress{Host: fmt.Sprintf("10.0.%d.%d", i/256, i%256), Port: 4000})
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			for range registry.Snapshot() {
			}
		}
	}()

	wg.Wait()
	req.Equal(500, registry.Len())
}
