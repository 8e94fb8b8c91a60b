// Package server relays chat datagrams: every datagram received is turned
// into a display line and sent back to every peer the server has heard from.
package server

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/protocol"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

const serverPrefix = "[SERVER] "

type State int

const (
	Idle State = iota
	Listening
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Config struct {
	ListenAddr      string
	PollInterval    time.Duration
	RestartInterval time.Duration
	BufferSize      int
}

type Server struct {
	mu       sync.Mutex
	log      *slog.Logger
	config   Config
	registry *runtime.Registry
	inbound  *runtime.InboundQueue
	state    State
	conn     contract.DatagramConn
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewServer(log *slog.Logger, inbound *runtime.InboundQueue, config Config) *Server {
	return &Server{
		log:      log,
		config:   config,
		registry: runtime.NewRegistry(),
		inbound:  inbound,
		state:    Idle,
	}
}

// Start binds the configured UDP address and starts serving it.
func (s *Server) Start(ctx context.Context) error {
	if err := s.checkIdle(); err != nil {
		return err
	}
	addr, err := net.ResolveUDPAddr("udp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", s.config.ListenAddr, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddr, err)
	}
	if err = s.Serve(ctx, conn); err != nil {
		_ = conn.Close()
		return err
	}
	return nil
}

// Serve adopts an open socket and runs the receive loop on it until Stop.
// The server owns the socket from then on.
func (s *Server) Serve(ctx context.Context, conn contract.DatagramConn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIdleLocked(); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.conn, s.cancel, s.done = conn, cancel, done
	s.state = Listening

	receiver := workers.NewReceiver(s.log, conn, s.handle, s.config.PollInterval, s.config.BufferSize)
	supervisor := workers.NewSupervisor(s.log, s.config.RestartInterval)
	go func() {
		defer close(done)
		supervisor.Add(receiver).Run(loopCtx)
	}()

	s.log.Info("Server listening", "address", conn.LocalAddr().String())
	return nil
}

// Stop closes the socket and waits for the receive loop to exit.
// A stopped server cannot be started again.
func (s *Server) Stop() {
	s.mu.Lock()
	if s.state != Listening {
		s.state = Stopped
		s.mu.Unlock()
		return
	}
	s.state = Stopped
	cancel, conn, done := s.cancel, s.conn, s.done
	s.mu.Unlock()

	cancel()
	_ = conn.Close()
	<-done
	s.log.Info("Server stopped", "peers", s.registry.Len())
}

// Announce broadcasts operator text to every peer, without decoding it.
func (s *Server) Announce(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	line := serverPrefix + text
	s.inbound.Push(line)
	s.broadcast(line)
}

func (s *Server) Peers() []domain.PeerAddress {
	return s.registry.Snapshot()
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LocalAddr is nil until the server listens.
func (s *Server) LocalAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

func (s *Server) handle(data []byte, from net.Addr) {
	msg := protocol.Decode(data)
	peer, ok := domain.NewPeerAddress(from)
	if !ok {
		s.log.Warn("Datagram from a non UDP address dropped", "from", from)
		return
	}
	if s.registry.Register(peer) {
		s.log.Debug("New peer registered", "peer", peer.String())
	}

	line := formatLine(msg, peer)
	s.inbound.Push(line)
	s.broadcast(line)
}

// broadcast sends line to every registered peer, the sender included.
// A failed send never stops the others.
func (s *Server) broadcast(line string) {
	conn := s.socket()
	if conn == nil {
		return
	}
	payload := protocol.Line(line)
	for _, peer := range s.registry.Snapshot() {
		if _, err := conn.WriteTo(payload, peer.UDPAddr()); err != nil {
			s.log.Debug("Send to peer failed", "peer", peer.String(), "error", err)
		}
	}
}

func (s *Server) socket() contract.DatagramConn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Listening {
		return nil
	}
	return s.conn
}

func (s *Server) checkIdle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkIdleLocked()
}

func (s *Server) checkIdleLocked() error {
	switch s.state {
	case Listening:
		return errors.ErrAlreadyStarted
	case Stopped:
		return errors.ErrServerStopped
	}
	return nil
}

func formatLine(msg protocol.Message, from domain.PeerAddress) string {
	switch m := msg.(type) {
	case protocol.Join:
		return fmt.Sprintf("[+] %s joined (%s)", m.Nickname, from)
	case protocol.Leave:
		return fmt.Sprintf("[-] %s left", m.Nickname)
	case protocol.Chat:
		return fmt.Sprintf("%s: %s", m.Nickname, m.Content)
	case protocol.Raw:
		return m.Text
	}
	return ""
}
