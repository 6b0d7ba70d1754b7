package types

import (
	"errors"

	"github.com/google/uuid"
)

func validateID(id, label string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid " + label)
	}
	return nil
}
