// Package matching learns how the user renames bank statement descriptions
// and replays those renames on later imports.
package matching

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyPattern = errors.New("pattern must not be empty")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=matching
type Repository interface {
	FindMatch(ctx context.Context, rawDescription string) (string, error)
	CreateMapping(ctx context.Context, rawPattern, preferredDescription string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the preferred description for a raw bank description, or
// empty when nothing learned applies.
func (s *Service) Suggest(ctx context.Context, rawDescription string) (string, error) {
	return s.repo.FindMatch(ctx, rawDescription)
}

// Learn stores a new pattern so future imports containing it get the
// preferred description suggested.
func (s *Service) Learn(ctx context.Context, rawPattern, preferredDescription string) error {
	rawPattern = strings.TrimSpace(rawPattern)
	preferredDescription = strings.TrimSpace(preferredDescription)

	if rawPattern == "" || preferredDescription == "" {
		return ErrEmptyPattern
	}

	return s.repo.CreateMapping(ctx, rawPattern, preferredDescription)
}
