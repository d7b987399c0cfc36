package inmemstore

import (
	"sync"

	"github.com/trezcool/shule/core/session"
)

// Store is a mutex-guarded in-memory session.Store for tests and
// throwaway interactive use.
type Store struct {
	mutex sync.RWMutex
	sess  session.Session
	set   bool

	// failure injection for tests
	WriteErr error
	ReadErr  error
	ClearErr error
}

var _ session.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (st *Store) Write(s session.Session) error {
	if st.WriteErr != nil {
		return st.WriteErr
	}
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.sess = s
	st.set = true
	return nil
}

func (st *Store) Read() (session.Session, error) {
	if st.ReadErr != nil {
		return session.Session{}, st.ReadErr
	}
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	if !st.set {
		return session.Session{}, session.ErrNoSession
	}
	return st.sess, nil
}

func (st *Store) Clear() error {
	if st.ClearErr != nil {
		return st.ClearErr
	}
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.sess = session.Session{}
	st.set = false
	return nil
}
