package protocol

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestEncode_Formats(t *testing.T) {
	req := require.New(t)

	req.Equal("JOIN|alice\n", string(Encode(Join{Nickname: "alice"})))
	req.Equal("LEAVE|alice\n", string(Encode(Leave{Nickname: "alice"})))
	req.Equal("MSG|bob|hi there\n", string(Encode(Chat{Nickname: "bob", Content: "hi there"})))
	req.Equal("hello\n", string(Encode(Raw{Text: "hello"})))
	req.Nil(Encode(nil))
}

func TestDecode_RoundTrip(t *testing.T) {
	messages := []Message{
		Join{Nickname: "alice"},
		Join{Nickname: "élodie 🚀"},
		Leave{Nickname: "alice"},
		Chat{Nickname: "bob", Content: "hi there"},
		Chat{Nickname: "bob", Content: "a|b|c"},
		Chat{Nickname: "bob", Content: "  leading spaces"},
		Chat{Nickname: "", Content: ""},
		Join{Nickname: ""},
	}
	for _, m := range messages {
		require.Equal(t, m, Decode(Encode(m)))
	}
}

func TestDecode_ContentKeepsExtraDelimiters(t *testing.T) {
	req := require.New(t)

	// When content holds the delimiter itself
	msg := Decode([]byte("MSG|bob|x|y|z\n"))

	// Then only the first two delimiters are significant
	req.Equal(Chat{Nickname: "bob", Content: "x|y|z"}, msg)
}

func TestDecode_FallsBackToRaw(t *testing.T) {
	cases := []struct {
		input    string
		expected Message
	}{
		{"JOIN", Raw{Text: "JOIN"}},
		{"LEAVE\n", Raw{Text: "LEAVE"}},
		{"MSG|bob", Raw{Text: "MSG|bob"}},
		{"PING|bob|x", Raw{Text: "PING|bob|x"}},
		{"join|alice", Raw{Text: "join|alice"}},
		{"", Raw{Text: ""}},
		{"just text  \r\n", Raw{Text: "just text"}},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, Decode([]byte(c.input)), "input %q", c.input)
	}
}

func TestDecode_TrimsOnlyTrailingWhitespace(t *testing.T) {
	req := require.New(t)

	req.Equal(Join{Nickname: " alice"}, Decode([]byte("JOIN| alice \t\n")))
	req.Equal("  indented", DecodeText([]byte("  indented\n")))
}

func TestDecode_InvalidUTF8IsReplaced(t *testing.T) {
	req := require.New(t)

	// Given a chat payload holding invalid bytes
	data := append([]byte("MSG|bob|caf"), 0xff, 0xfe, '\n')

	// When decoded
	msg := Decode(data)

	// Then bytes are substituted, not rejected
	chat, ok := msg.(Chat)
	req.True(ok)
	req.Equal("bob", chat.Nickname)
	req.True(utf8.ValidString(chat.Content))
	req.Contains(chat.Content, "�")
}

func TestDecode_ArbitraryBytesNeverPanic(t *testing.T) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		data := make([]byte, rnd.Intn(64))
		rnd.Read(data)
		req.NotPanics(func() {
			switch msg := Decode(data).(type) {
			case Join, Leave, Chat:
			case Raw:
				req.True(utf8.ValidString(msg.Text))
			default:
				req.Failf("unexpected message", "%T", msg)
			}
		})
	}
}
