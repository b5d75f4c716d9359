package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"go.viam.com/planararm/logging"
)

// ReadFile reads an arm config from the given file. Environment variables referenced as
// ${VAR} are substituted before the JSON is decoded. Files ending in .json5 may use comments,
// unquoted keys and trailing commas.
func ReadFile(filePath string, logger logging.Logger) (*ArmConfig, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read arm config %q", filePath)
	}
	if strings.EqualFold(filepath.Ext(filePath), ".json5") {
		if buf, err = json5ToJSON(buf); err != nil {
			return nil, errors.Wrapf(err, "cannot parse json5 arm config %q", filePath)
		}
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// json5ToJSON rewrites a JSON5 document as plain JSON so it goes through the same strict decoder.
func json5ToJSON(buf []byte) ([]byte, error) {
	var doc interface{}
	if err := json5.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// FromReader reads an arm config from the given reader, applies defaults and validates it.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*ArmConfig, error) {
	var cfg ArmConfig
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal arm config %q", originalPath)
	}
	cfg.ConfigFilePath = originalPath
	cfg.applyDefaults()

	if err := cfg.Validate("arm"); err != nil {
		return nil, err
	}
	logger.Debugw("read arm config", "path", originalPath, "name", cfg.Name, "segments", len(cfg.Segments))
	return &cfg, nil
}
