package sink

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

// Console prints display lines, one per row.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
}

func NewConsole(out io.Writer, colours bool) *Console {
	return &Console{out: out, colours: colours}
}

func (c *Console) Consume(_ context.Context, line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, c.render(line))
	return err
}

func (c *Console) render(line string) string {
	if !c.colours {
		return line
	}
	switch {
	case strings.HasPrefix(line, "[+] "):
		return color.Green.Sprint(line)
	case strings.HasPrefix(line, "[-] "):
		return color.Yellow.Sprint(line)
	case strings.HasPrefix(line, "[SERVER] "):
		return color.Red.Sprint(line)
	case strings.HasPrefix(line, "[*] "):
		return color.Cyan.Sprint(line)
	}
	return line
}
