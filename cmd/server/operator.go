package main

import (
	"bufio"
	"chat-relay/domain"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

type announcer interface {
	Announce(text string)
	Peers() []domain.PeerAddress
}

// operate reads operator lines until /quit or end of input.
// /peers lists the registry, anything else is announced to every peer.
func operate(in io.Reader, out io.Writer, srv announcer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch line := strings.TrimSpace(scanner.Text()); line {
		case "/quit":
			return
		case "/peers":
			printPeers(out, srv.Peers())
		default:
			srv.Announce(line)
		}
	}
}

func printPeers(out io.Writer, peers []domain.PeerAddress) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Host", "Port"})
	for i, peer := range peers {
		table.Append([]string{strconv.Itoa(i + 1), peer.Host, strconv.Itoa(peer.Port)})
	}
	table.Render()
}
