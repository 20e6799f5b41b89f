package chessball

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LoadConfig reads a JSON config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err := json.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "parsing config %s", path)
	}
	if !conf.IsValid() {
		return conf, errors.Errorf("config %s is not valid", path)
	}
	return conf, nil
}
