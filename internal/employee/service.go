package employee

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=employee
type Repository interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	UpsertEntries(ctx context.Context, entries []Entry) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Directory returns the current card directory in import order.
func (s *Service) Directory(ctx context.Context) (Directory, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directory entries: %w", err)
	}

	return Directory(entries), nil
}

// ImportBatch upserts freshly resolved roster entries. An empty batch is a
// no-op.
func (s *Service) ImportBatch(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	if err := s.repo.UpsertEntries(ctx, entries); err != nil {
		return fmt.Errorf("upsert directory entries: %w", err)
	}

	return nil
}
