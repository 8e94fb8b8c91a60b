package main

import (
	"bytes"
	"chat-relay/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	announced []string
	peers     []domain.PeerAddress
}

func (f *fakeServer) Announce(text string) { f.announced = append(f.announced, text) }

func (f *fakeServer) Peers() []domain.PeerAddress { return f.peers }

func TestOperate(t *testing.T) {
	req := require.New(t)
	srv := &fakeServer{peers: []domain.PeerAddress{{Host: "10.0.0.5", Port: 4000}}}
	var out bytes.Buffer

	// Given an operator typing an announcement, a peer listing, then quitting
	in := strings.NewReader("server down in 5m\n/peers\n/quit\nnever sent\n")

	operate(in, &out, srv)

	// Then only the text before /quit is announced
	req.Equal([]string{"server down in 5m"}, srv.announced)
	// And the peer table was printed
	req.Contains(out.String(), "10.0.0.5")
	req.Contains(out.String(), "4000")
}
