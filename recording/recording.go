package recording

import (
	"encoding/gob"
	"os"

	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/pkg/errors"
)

// Save writes a container to disk as gob. The capture files are private
// to this toolkit; nothing else reads them.
func Save(path string, c *model.Container) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create recording %v", path)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrapf(err, "could not encode recording %v", path)
	}
	return nil
}

func Load(path string) (*model.Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open recording %v", path)
	}
	defer f.Close()

	var c model.Container
	if err := gob.NewDecoder(f).Decode(&c); err != nil {
		return nil, errors.Wrapf(err, "could not decode recording %v", path)
	}
	return &c, nil
}
