package usecase

import (
	"context"
	"errors"

	"github.com/Ngamdu/Meditouch/internal/domain/menu"
)

const defaultJournalLimit = 20

// JournalRepository abstracts persistence for generation journal entries.
type JournalRepository interface {
	Append(ctx context.Context, entry menu.JournalEntry) error
	Recent(ctx context.Context, limit int) ([]menu.JournalEntry, error)
}

// JournalService exposes read access to the generation journal.
type JournalService struct {
	Repo JournalRepository
}

// NewJournalService constructs a JournalService.
func NewJournalService(repo JournalRepository) JournalService {
	return JournalService{Repo: repo}
}

// Recent returns the newest entries first. A non-positive limit uses the default.
func (s JournalService) Recent(ctx context.Context, limit int) ([]menu.JournalEntry, error) {
	if s.Repo == nil {
		return nil, errors.New("journal is disabled")
	}
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	return s.Repo.Recent(ctx, limit)
}
