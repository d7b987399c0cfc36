package filestore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const deviceIDFile = "device_id"

// DeviceID returns this install's persistent identifier, generating one
// on first use. It lives beside the session file and survives logout.
func (st *Store) DeviceID() (string, error) {
	path := filepath.Join(st.dir, deviceIDFile)

	if data, err := ioutil.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", errors.Wrap(err, "reading device id")
	}

	id := uuid.New().String()
	if err := ioutil.WriteFile(path, []byte(id), 0600); err != nil {
		return "", errors.Wrap(err, "writing device id")
	}
	return id, nil
}
