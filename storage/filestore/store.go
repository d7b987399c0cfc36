package filestore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/session"
)

const sessionFile = "session.json"

// Store is a file-backed session.Store. The whole session is one JSON
// blob written atomically (temp file + rename), user-readable only.
type Store struct {
	dir   string
	mutex sync.Mutex
}

var _ session.Store = (*Store)(nil)

// Open returns a Store rooted at dir; when dir is empty it falls back to
// core.Conf.DataDir, then to <UserConfigDir>/<app name>.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = core.Conf.DataDir
	}
	if dir == "" {
		confDir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving user config dir")
		}
		dir = filepath.Join(confDir, strings.ToLower(core.Conf.AppName))
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dir)
	}
	return &Store{dir: dir}, nil
}

func (st *Store) path() string {
	return filepath.Join(st.dir, sessionFile)
}

func (st *Store) Write(s session.Session) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling session")
	}

	tmp, err := ioutil.TempFile(st.dir, sessionFile+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp session file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "restricting session file mode")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing session file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing session file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), st.path()), "committing session file")
}

func (st *Store) Read() (session.Session, error) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	var s session.Session
	data, err := ioutil.ReadFile(st.path())
	if err != nil {
		if os.IsNotExist(err) {
			return s, session.ErrNoSession
		}
		return s, errors.Wrap(err, "reading session file")
	}
	if len(data) == 0 {
		return s, session.ErrNoSession
	}
	if err := json.Unmarshal(data, &s); err != nil {
		// corrupt local state; blunt recovery: wipe and report logged out
		_ = os.Remove(st.path())
		return session.Session{}, session.ErrNoSession
	}
	return s, nil
}

func (st *Store) Clear() error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	if err := os.Remove(st.path()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
