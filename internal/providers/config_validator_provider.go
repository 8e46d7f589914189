package providers

import (
	"errors"
	"pidash/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks every config section against its struct tags.
// gookit/validate does not descend into nested structs, so the sections
// are validated one by one.
func (cv *CnfValidator) Validate() error {
	sections := []interface{}{
		&cv.conf.Pihole,
		&cv.conf.Refresh,
		&cv.conf.WebServer,
		&cv.conf.Logger,
	}

	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return v.Errors.OneError()
		}
	}

	if cv.conf.Pihole.Count <= 0 {
		return errors.New("pihole.count must be a positive integer")
	}

	return nil
}
