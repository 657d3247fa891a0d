package refueling

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// resetPhrase must be typed (any casing) before a full wipe is executed.
const resetPhrase = "excluir"

// ErrConfirmationMismatch is returned when the reset confirmation phrase
// does not match. State is left untouched.
var ErrConfirmationMismatch = errors.New("confirmation phrase does not match")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=refueling
type Repository interface {
	CreateRefuelings(ctx context.Context, items []Refueling) error
	ListRefuelings(ctx context.Context) ([]Refueling, error)
	DeleteAllRefuelings(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ImportBatch persists a batch of resolved refuelings. An empty batch is a
// no-op.
func (s *Service) ImportBatch(ctx context.Context, items []Refueling) error {
	if len(items) == 0 {
		return nil
	}

	if err := s.repo.CreateRefuelings(ctx, items); err != nil {
		return fmt.Errorf("create refuelings: %w", err)
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]Refueling, error) {
	return s.repo.ListRefuelings(ctx)
}

// Reset deletes every refueling record. The caller must supply the
// confirmation phrase, matched case-insensitively; anything else returns
// ErrConfirmationMismatch without touching state.
func (s *Service) Reset(ctx context.Context, confirmation string) error {
	if !strings.EqualFold(confirmation, resetPhrase) {
		return ErrConfirmationMismatch
	}

	if err := s.repo.DeleteAllRefuelings(ctx); err != nil {
		return fmt.Errorf("delete refuelings: %w", err)
	}

	return nil
}
