//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const transcriptPrefix = "line:"

type ITranscriptRepository interface {
	StoreLine(line TranscriptLine) error
	GetLines(limit *int) ([]TranscriptLine, error)
}

type TranscriptRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger) TranscriptRepository {
	return TranscriptRepository{db: db, log: log}
}

// TranscriptLine is a display line as it was shown, with its display time.
type TranscriptLine struct {
	ID   uuid.UUID
	Line string
	At   time.Time
}

type diskLine struct {
	ID   []byte `cbor:"1,keyasint"`
	Line string `cbor:"2,keyasint"`
	At   int64  `cbor:"3,keyasint"`
}

// StoreLine persists a line under "line:{timestamp_padded}:{uuid}" so that
// key order is display order; the uuid separates lines shown in the same nanosecond.
func (r TranscriptRepository) StoreLine(line TranscriptLine) error {
	key := fmt.Sprintf("%s%019d:%s", transcriptPrefix, line.At.UnixNano(), line.ID)
	bytes, err := cbor.Marshal(fromTranscriptLine(line))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetLines returns the most recent lines, oldest first.
// A nil limit returns the whole transcript.
func (r TranscriptRepository) GetLines(limit *int) ([]TranscriptLine, error) {
	var lines []diskLine
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(transcriptPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the largest key below the seek key
		for it.Seek(append(prefix, 0xff)); it.ValidForPrefix(prefix); it.Next() {
			if limit != nil && len(lines) == *limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d lines reached", *limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var line diskLine
				if err := cbor.Unmarshal(value, &line); err != nil {
					return err
				}
				lines = append(lines, line)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	transcript := lo.Map(lines, func(item diskLine, _ int) TranscriptLine {
		return toTranscriptLine(item)
	})
	slices.Reverse(transcript)
	return transcript, nil
}

func fromTranscriptLine(line TranscriptLine) diskLine {
	return diskLine{ID: line.ID[:], Line: line.Line, At: line.At.UnixNano()}
}

func toTranscriptLine(line diskLine) TranscriptLine {
	id, err := uuid.FromBytes(line.ID)
	if err != nil {
		id = uuid.Nil
	}
	return TranscriptLine{ID: id, Line: line.Line, At: time.Unix(0, line.At).UTC()}
}
