// Package domain contains core concepts of the chat relay.
// This file defines the address of a peer known to the server.
// No runtime or network I/O should be added here.
package domain

import (
	"cmp"
	"fmt"
	"net"
)

// PeerAddress identifies a UDP endpoint. It is an immutable, comparable value.
type PeerAddress struct {
	Host string
	Port int
}

// NewPeerAddress converts the address a datagram came from.
// Only UDP addresses are accepted.
func NewPeerAddress(addr net.Addr) (PeerAddress, bool) {
	udp, ok := addr.(*net.UDPAddr)
	if !ok || udp == nil {
		return PeerAddress{}, false
	}
	return PeerAddress{Host: udp.IP.String(), Port: udp.Port}, true
}

// String renders the address the way it appears in join lines.
func (p PeerAddress) String() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

func (p PeerAddress) UDPAddr() *net.UDPAddr {
	return &net.UDPAddr{IP: net.ParseIP(p.Host), Port: p.Port}
}

// Compare orders peers by host, then port.
func (p PeerAddress) Compare(other PeerAddress) int {
	if c := cmp.Compare(p.Host, other.Host); c != 0 {
		return c
	}
	return cmp.Compare(p.Port, other.Port)
}
