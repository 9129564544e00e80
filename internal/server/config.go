package server

import (
	"go.uber.org/zap"

	"github.com/fernandofreitas03/textfmt/internal/errors"
)

type Config struct {
	// Listen is the address to bind, e.g. ":3000".
	Listen string
	Log    *zap.SugaredLogger
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("missing listen address")
	}

	if c.Log == nil {
		return errors.New("missing logger")
	}

	return nil
}
