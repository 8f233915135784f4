package service

import (
	"context"
	"errors"

	"github.com/shenikar/civic_tracker/internal/models"
)

// FanoutPublisher отправляет событие каждому издателю; ошибки собираются вместе
type FanoutPublisher []EventPublisher

func (f FanoutPublisher) Publish(ctx context.Context, event models.ProblemEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
