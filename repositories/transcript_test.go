package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestTranscriptRepository_StoreAndGet_Chronological(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := NewTranscriptRepository(openTestDB(t), log)
	start := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	// Given lines stored out of order
	lines := []TranscriptLine{
		{ID: uuid.New(), Line: "bob: hi there", At: start.Add(2 * time.Second)},
		{ID: uuid.New(), Line: "[+] alice joined (10.0.0.5:4000)", At: start},
		{ID: uuid.New(), Line: "[-] alice left", At: start.Add(3 * time.Second)},
		{ID: uuid.New(), Line: "[+] bob joined (10.0.0.6:4000)", At: start.Add(time.Second)},
	}
	for _, line := range lines {
		req.NoError(repository.StoreLine(line))
	}

	// When the whole transcript is read
	got, err := repository.GetLines(nil)
	req.NoError(err)

	// Then lines come back oldest first, intact
	req.Equal([]TranscriptLine{lines[1], lines[3], lines[0], lines[2]}, got)
}

func TestTranscriptRepository_GetLines_Limit(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := NewTranscriptRepository(openTestDB(t), log)
	start := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	for i, text := range []string{"one", "two", "three"} {
		req.NoError(repository.StoreLine(TranscriptLine{
			ID:   uuid.New(),
			Line: text,
			At:   start.Add(time.Duration(i) * time.Second),
		}))
	}

	// When only two lines are requested
	got, err := repository.GetLines(lo.ToPtr(2))
	req.NoError(err)

	// Then the two most recent are returned, oldest first
	req.Equal([]string{"two", "three"}, lo.Map(got, func(item TranscriptLine, _ int) string {
		return item.Line
	}))
}

func TestTranscriptRepository_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewTranscriptRepository(openTestDB(t), slog.Default())

	got, err := repository.GetLines(lo.ToPtr(10))
	req.NoError(err)
	req.Empty(got)
}
