package main

import (
	"bufio"
	"io"
	"strings"
)

type sender interface {
	SendMessage(text string)
}

// chat submits every input line until /quit or end of input.
func chat(in io.Reader, c sender) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "/quit" {
			return
		}
		c.SendMessage(line)
	}
}
