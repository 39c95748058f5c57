package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"quatex/internal/domain"
	"quatex/internal/util/memzero"
)

const (
	sessionsDir   = "sessions"
	sessionSuffix = ".json"
)

// sessionFile is the on-disk layout. Summary is always clear text and never
// holds secrets; exactly one of Session and Sealed is set.
type sessionFile struct {
	Summary domain.Summary  `json:"summary"`
	Session *domain.Session `json:"session,omitempty"`
	Sealed  *envelope       `json:"sealed,omitempty"`
}

// SessionFileStore persists simulation sessions, one file per session.
type SessionFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: filepath.Join(dir, sessionsDir), kdf: defaultKDFParams()}
}

func (s *SessionFileStore) path(name domain.SessionName) string {
	return filepath.Join(s.dir, name.String()+sessionSuffix)
}

// SaveSession writes session, sealing it when passphrase is non-empty.
func (s *SessionFileStore) SaveSession(passphrase string, session domain.Session) error {
	if err := ValidateName(session.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f := sessionFile{
		Summary: domain.Summary{
			Name:       session.Name,
			Modulus:    session.State.Modulus,
			Phase:      session.State.Phase().String(),
			Sealed:     passphrase != "",
			UpdatedUTC: session.UpdatedUTC,
		},
	}
	if passphrase == "" {
		f.Session = &session
	} else {
		raw, err := json.Marshal(session)
		if err != nil {
			return err
		}
		f.Sealed, err = seal(passphrase, raw, []byte(session.Name), s.kdf)
		memzero.Zero(raw)
		if err != nil {
			return err
		}
	}
	return writeJSON(s.path(session.Name), f, 0o600)
}

// LoadSession retrieves the session called name.
func (s *SessionFileStore) LoadSession(passphrase string, name domain.SessionName) (domain.Session, bool, error) {
	if err := ValidateName(name); err != nil {
		return domain.Session{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var f sessionFile
	found, err := readJSON(s.path(name), &f)
	if err != nil || !found {
		return domain.Session{}, false, err
	}
	if f.Sealed == nil {
		if f.Session == nil {
			return domain.Session{}, false, errors.New("session file has no body")
		}
		return *f.Session, true, nil
	}
	if passphrase == "" {
		return domain.Session{}, true, ErrPassphraseRequired
	}
	raw, err := open(passphrase, f.Sealed, []byte(name))
	if err != nil {
		return domain.Session{}, true, err
	}
	defer memzero.Zero(raw)

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Session{}, true, err
	}
	return session, true, nil
}

// ListSessions returns the clear-text summaries sorted by name.
func (s *SessionFileStore) ListSessions() ([]domain.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]domain.Summary, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), sessionSuffix) {
			continue
		}
		var f sessionFile
		if _, err := readJSON(filepath.Join(s.dir, e.Name()), &f); err != nil {
			return nil, err
		}
		out = append(out, f.Summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteSession removes the session file; a missing session is not an error.
func (s *SessionFileStore) DeleteSession(name domain.SessionName) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
