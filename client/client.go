// Package client shares one UDP socket between the sender, used by the
// front-end to submit text, and a receive loop feeding an inbound queue.
package client

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"chat-relay/protocol"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

const DefaultNickname = "guest"

type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

type Config struct {
	ServerHost      string
	ServerPort      int
	Nickname        string
	PollInterval    time.Duration
	RestartInterval time.Duration
	BufferSize      int
}

type Client struct {
	mu         sync.Mutex
	log        *slog.Logger
	config     Config
	nickname   string
	inbound    *runtime.InboundQueue
	state      State
	conn       contract.DatagramConn
	serverAddr net.Addr
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewClient(log *slog.Logger, inbound *runtime.InboundQueue, config Config) *Client {
	nickname := strings.TrimSpace(config.Nickname)
	if nickname == "" {
		nickname = DefaultNickname
	}
	return &Client{
		log:      log,
		config:   config,
		nickname: nickname,
		inbound:  inbound,
		state:    Disconnected,
	}
}

// Connect binds an ephemeral local port and announces the nickname to the server.
func (c *Client) Connect(ctx context.Context) error {
	if c.State() == Connected {
		return errors.ErrAlreadyConnected
	}
	conn, err := net.ListenUDP("udp", &net.UDPAddr{})
	if err != nil {
		return fmt.Errorf("failed to bind local socket: %w", err)
	}
	if err = c.ConnectWith(ctx, conn); err != nil {
		_ = conn.Close()
		return err
	}
	return nil
}

// ConnectWith adopts an open socket; the client owns it until Disconnect.
func (c *Client) ConnectWith(ctx context.Context, conn contract.DatagramConn) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Connected {
		return errors.ErrAlreadyConnected
	}
	serverAddr, err := c.resolveServer()
	if err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.conn, c.serverAddr, c.cancel, c.done = conn, serverAddr, cancel, done
	c.state = Connected

	receiver := workers.NewReceiver(c.log, conn, c.handle, c.config.PollInterval, c.config.BufferSize)
	supervisor := workers.NewSupervisor(c.log, c.config.RestartInterval)
	go func() {
		defer close(done)
		supervisor.Add(receiver).Run(loopCtx)
	}()

	c.log.Info("Connected", "server", serverAddr.String(), "nickname", c.nickname)
	c.sendLocked(protocol.Join{Nickname: c.nickname})
	return nil
}

// SendMessage is fire-and-forget: blank text, a disconnected client and
// send failures are all silently ignored.
func (c *Client) SendMessage(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Connected {
		return
	}
	c.sendLocked(protocol.Chat{Nickname: c.nickname, Content: text})
}

// Disconnect says goodbye, stops the receive loop and closes the socket.
func (c *Client) Disconnect() {
	c.mu.Lock()
	if c.state != Connected {
		c.mu.Unlock()
		return
	}
	c.sendLocked(protocol.Leave{Nickname: c.nickname})
	c.state = Disconnected
	cancel, conn, done := c.cancel, c.conn, c.done
	c.conn, c.serverAddr = nil, nil
	c.mu.Unlock()

	cancel()
	_ = conn.Close()
	<-done
	c.log.Info("Disconnected", "nickname", c.nickname)
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) Nickname() string {
	return c.nickname
}

// ServerAddress is host:port of the relay, as configured.
func (c *Client) ServerAddress() string {
	return net.JoinHostPort(c.config.ServerHost, strconv.Itoa(c.config.ServerPort))
}

// LocalAddr is nil while disconnected.
func (c *Client) LocalAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.LocalAddr()
}

// Server broadcasts are display lines already, they are not decoded further.
func (c *Client) handle(data []byte, _ net.Addr) {
	c.inbound.Push(protocol.DecodeText(data))
}

func (c *Client) sendLocked(msg protocol.Message) {
	if _, err := c.conn.WriteTo(protocol.Encode(msg), c.serverAddr); err != nil {
		c.log.Debug("Send to server failed", "error", err)
	}
}

func (c *Client) resolveServer() (net.Addr, error) {
	addr, err := net.ResolveUDPAddr("udp", c.ServerAddress())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve server %s: %w", c.ServerAddress(), err)
	}
	return addr, nil
}
