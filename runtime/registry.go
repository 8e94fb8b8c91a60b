package runtime

import (
	"chat-relay/domain"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Registry is the set of peers a server broadcasts to.
// Peers are added the first time they send a datagram and are never removed,
// a LEAVE is relayed as text only.
//
// Writes come from the server's receive goroutine; Snapshot may be called from
// any goroutine (operator announcements, peer listings).
type Registry struct {
	mu    sync.RWMutex
	peers map[domain.PeerAddress]struct{}
}

func NewRegistry() *Registry {
	return &Registry{peers: make(map[domain.PeerAddress]struct{})}
}

// Register adds a peer and reports whether it was unknown.
func (r *Registry) Register(addr domain.PeerAddress) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.peers[addr]; ok {
		return false
	}
	r.peers[addr] = struct{}{}
	return true
}

// Snapshot returns a sorted copy of the current peers.
// Later registrations never show up in a slice already returned.
func (r *Registry) Snapshot() []domain.PeerAddress {
	r.mu.RLock()
	peers := lo.Keys(r.peers)
	r.mu.RUnlock()

	slices.SortFunc(peers, domain.PeerAddress.Compare)
	return peers
}

func (r *Registry) Contains(addr domain.PeerAddress) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.peers[addr]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.peers)
}
