package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/you/skyfinder/internal/models"
)

type ProviderMock struct {
	offers          []models.Offer
	delay           time.Duration
	errorOutMessage *string
	err             error
	callCount       *int32
	lastCriteria    *models.Criteria
}

func (p ProviderMock) Name() string {
	return "mock"
}

func (p ProviderMock) Search(ctx context.Context, c models.Criteria) ([]models.Offer, error) {
	if p.callCount != nil {
		atomic.AddInt32(p.callCount, 1)
	}
	if p.lastCriteria != nil {
		*p.lastCriteria = c
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.errorOutMessage != nil {
		return nil, errors.New(p.Name() + ": " + *p.errorOutMessage)
	}
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return p.offers, nil
}

func offers(raw ...string) []models.Offer {
	out := make([]models.Offer, 0, len(raw))
	for _, r := range raw {
		out = append(out, models.NewOffer(r))
	}
	return out
}

func valToPtr[T any](param T) *T {
	return &param
}
