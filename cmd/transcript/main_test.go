package main

import (
	"bytes"
	"chat-relay/repositories"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPrintTranscript(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	printTranscript(&out, []repositories.TranscriptLine{
		{ID: uuid.New(), Line: "[+] alice joined (10.0.0.5:4000)", At: at},
		{ID: uuid.New(), Line: "alice: hi | all", At: at.Add(time.Second)},
	})

	req.Contains(out.String(), "[+] alice joined (10.0.0.5:4000)")
	req.Contains(out.String(), "alice: hi | all")
}
