package commands

import (
	"errors"
	"time"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrPurgePaidOrdersCommandIsNotConstructed = errors.New(
	"PurgePaidOrdersCommand must be created via NewPurgePaidOrdersCommand constructor",
)

// PurgePaidOrdersCommand represents a request to delete settled orders older
// than a retention window.
type PurgePaidOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgePaidOrdersCommand creates a purge command. The retention window
// must be positive; a purge that would delete freshly paid orders is always
// a configuration mistake.
func NewPurgePaidOrdersCommand(retention time.Duration) (PurgePaidOrdersCommand, error) {
	cmd := PurgePaidOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgePaidOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgePaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgePaidOrdersCommandIsNotConstructed)
}

// Retention returns how long paid orders are kept after their last update.
func (c PurgePaidOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgePaidOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidError("retention must be greater than 0")
	}

	c.retention = retention
	return nil
}
