package sink

import (
	"chat-relay/repositories"
	"context"
	"time"

	"github.com/google/uuid"
)

// DiskSink appends every displayed line to the transcript.
type DiskSink struct {
	repository repositories.ITranscriptRepository
	now        func() time.Time
}

func NewDiskSink(repository repositories.ITranscriptRepository) DiskSink {
	return DiskSink{repository: repository, now: time.Now}
}

func (d DiskSink) Consume(_ context.Context, line string) error {
	return d.repository.StoreLine(repositories.TranscriptLine{
		ID:   uuid.New(),
		Line: line,
		At:   d.now().UTC(),
	})
}
