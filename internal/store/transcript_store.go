package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	bolt "go.etcd.io/bbolt"

	"quatex/internal/domain"
)

const (
	transcriptsFilename = "transcripts.db"

	metadataBucket    = "metadata"
	transcriptsBucket = "transcripts"
	versionKey        = "version"
	transcriptVersion = 0
)

// TranscriptBoltStore persists per-session assistant conversations in a bolt
// database. Each session has a nested bucket keyed by a monotonically
// increasing sequence number, so turns load in the order they were appended.
type TranscriptBoltStore struct {
	db *bolt.DB
}

// OpenTranscriptBoltStore opens (creating if needed) the transcript database
// under dir.
func OpenTranscriptBoltStore(dir string) (*TranscriptBoltStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(filepath.Join(dir, transcriptsFilename), 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists([]byte(metadataBucket))
		if err != nil {
			return err
		}
		if _, err = tx.CreateBucketIfNotExists([]byte(transcriptsBucket)); err != nil {
			return err
		}
		if b := bkt.Get([]byte(versionKey)); b != nil {
			if len(b) != 1 || b[0] != transcriptVersion {
				return fmt.Errorf("store: incompatible transcript version: %v", b)
			}
			return nil
		}
		return bkt.Put([]byte(versionKey), []byte{transcriptVersion})
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &TranscriptBoltStore{db: db}, nil
}

// AppendTurns adds turns, in order, to the transcript of name.
func (s *TranscriptBoltStore) AppendTurns(name domain.SessionName, turns ...domain.Turn) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		sBkt, err := tx.Bucket([]byte(transcriptsBucket)).CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
		for _, t := range turns {
			seq, err := sBkt.NextSequence()
			if err != nil {
				return err
			}
			raw, err := cbor.Marshal(t)
			if err != nil {
				return err
			}
			if err := sBkt.Put(binary.BigEndian.AppendUint64(nil, seq), raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadTranscript retrieves the transcript of name; an unknown session has an
// empty transcript.
func (s *TranscriptBoltStore) LoadTranscript(name domain.SessionName) (domain.Transcript, error) {
	if err := ValidateName(name); err != nil {
		return domain.Transcript{}, err
	}
	out := domain.Transcript{Session: name}
	err := s.db.View(func(tx *bolt.Tx) error {
		sBkt := tx.Bucket([]byte(transcriptsBucket)).Bucket([]byte(name))
		if sBkt == nil {
			return nil
		}
		return sBkt.ForEach(func(_, v []byte) error {
			var t domain.Turn
			if err := cbor.Unmarshal(v, &t); err != nil {
				return err
			}
			out.Turns = append(out.Turns, t)
			return nil
		})
	})
	return out, err
}

// DeleteTranscript drops the transcript of name.
func (s *TranscriptBoltStore) DeleteTranscript(name domain.SessionName) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(transcriptsBucket)).DeleteBucket([]byte(name))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

// Close flushes and closes the database.
func (s *TranscriptBoltStore) Close() error {
	if err := s.db.Sync(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Compile-time assertion that TranscriptBoltStore implements domain.TranscriptStore.
var _ domain.TranscriptStore = (*TranscriptBoltStore)(nil)
