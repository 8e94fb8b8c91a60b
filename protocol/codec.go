// Package protocol formats and parses the pipe-delimited text protocol
// exchanged between chat clients and the relay server.
//
// One message travels per datagram and every unit ends with a newline:
//
//	JOIN|<nickname>
//	LEAVE|<nickname>
//	MSG|<nickname>|<content>
//
// Anything else is relayed as plain display text.
package protocol

import (
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
)

const (
	TagJoin  = "JOIN"
	TagLeave = "LEAVE"
	TagMsg   = "MSG"

	delimiter  = "|"
	terminator = "\n"
	maxFields  = 3
)

// Message is one of Join, Leave, Chat or Raw.
type Message interface {
	isMessage()
}

type Join struct {
	Nickname string
}

type Leave struct {
	Nickname string
}

type Chat struct {
	Nickname string
	Content  string
}

// Raw carries any text that does not match a known tag.
type Raw struct {
	Text string
}

func (Join) isMessage()  {}
func (Leave) isMessage() {}
func (Chat) isMessage()  {}
func (Raw) isMessage()   {}

// Encode renders a message as a newline terminated datagram payload.
func Encode(m Message) []byte {
	switch msg := m.(type) {
	case Join:
		return Line(TagJoin + delimiter + msg.Nickname)
	case Leave:
		return Line(TagLeave + delimiter + msg.Nickname)
	case Chat:
		return Line(TagMsg + delimiter + msg.Nickname + delimiter + msg.Content)
	case Raw:
		return Line(msg.Text)
	}
	return nil
}

// Line frames a bare display line, as rebroadcast by the server.
func Line(text string) []byte {
	return []byte(text + terminator)
}

// Decode never fails: malformed input degrades to Raw.
func Decode(data []byte) Message {
	text := DecodeText(data)
	parts := strings.SplitN(text, delimiter, maxFields)

	switch {
	case parts[0] == TagJoin && len(parts) >= 2:
		return Join{Nickname: parts[1]}
	case parts[0] == TagLeave && len(parts) >= 2:
		return Leave{Nickname: parts[1]}
	case parts[0] == TagMsg && len(parts) >= 3:
		return Chat{Nickname: parts[1], Content: parts[2]}
	default:
		return Raw{Text: text}
	}
}

// DecodeText decodes a datagram as UTF-8, replacing invalid sequences with
// U+FFFD, and trims trailing whitespace.
func DecodeText(data []byte) string {
	decoded, err := textunicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		decoded = []byte(strings.ToValidUTF8(string(data), string(unicode.ReplacementChar)))
	}
	return strings.TrimRightFunc(string(decoded), unicode.IsSpace)
}
