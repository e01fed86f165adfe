package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
)

// storeError marks a collaborator failure as ErrStore unless it is one of the
// domain errors in keep or a context error.
func storeError(err error, keep ...error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	for _, k := range keep {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", entities.ErrStore, err)
}
