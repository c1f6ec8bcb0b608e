// Package usecase contains application-level services.
package usecase

import (
	"context"
	"time"

	"github.com/Ngamdu/Meditouch/internal/domain/menu"
	"github.com/Ngamdu/Meditouch/internal/infrastructure/ai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TextGenerator abstracts plain prompt -> text completion.
type TextGenerator = ai.Client

// MenuService turns a subject into a three-course menu using a TextGenerator.
type MenuService struct {
	Generator TextGenerator
	Journal   JournalRepository
	Logger    *zap.Logger
	Now       func() time.Time
	NewID     func() string
}

// NewMenuService constructs a MenuService. journal may be nil.
func NewMenuService(generator TextGenerator, journal JournalRepository, logger *zap.Logger) *MenuService {
	return new(MenuService{
		Generator: generator,
		Journal:   journal,
		Logger:    logger,
	})
}

// Configured reports whether the generator can be called at all.
func (s *MenuService) Configured() bool {
	return s != nil && ai.Configured(s.Generator)
}

// Generate returns the provider text for subject. Errors are *menu.Error
// values classified as configuration, validation or generation failures.
func (s *MenuService) Generate(ctx context.Context, subject string) (string, error) {
	started := s.now()

	text, err := s.generate(ctx, subject)
	// The attempt is recorded even when the caller has gone away.
	s.record(context.WithoutCancel(ctx), subject, started, err)
	return text, err
}

func (s *MenuService) generate(ctx context.Context, subject string) (string, error) {
	if !s.Configured() {
		return "", menu.NewError(menu.KindConfiguration, menu.MessageNotConfigured, nil)
	}
	req := menu.Request{Subject: subject}
	if err := req.Validate(); err != nil {
		return "", err
	}

	text, err := s.Generator.Generate(ctx, menu.Prompt(req.Subject))
	if err != nil {
		s.logger().Error("menu generation failed", zap.String("subject", subject), zap.Error(err))
		return "", menu.NewError(menu.KindGeneration, menu.MessageProviderFailed, err)
	}
	return text, nil
}

func (s *MenuService) record(ctx context.Context, subject string, started time.Time, err error) {
	if s.Journal == nil {
		return
	}

	entry := menu.JournalEntry{
		ID:        s.newID(),
		Subject:   subject,
		Outcome:   menu.OutcomeSuccess,
		Duration:  s.now().Sub(started),
		CreatedAt: started,
	}
	if err != nil {
		entry.Outcome = string(menu.KindOf(err))
		if entry.Outcome == "" {
			entry.Outcome = string(menu.KindGeneration)
		}
		entry.Detail = err.Error()
	}

	if jerr := s.Journal.Append(ctx, entry); jerr != nil {
		s.logger().Warn("failed to record journal entry", zap.String("id", entry.ID), zap.Error(jerr))
	}
}

func (s *MenuService) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *MenuService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *MenuService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
