package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Ngamdu/Meditouch/internal/application/usecase"
	"github.com/Ngamdu/Meditouch/internal/domain/menu"
	"github.com/Ngamdu/Meditouch/internal/infrastructure/journal"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/textutil"
	"github.com/charmbracelet/lipgloss"
)

const historySubjectWidth = 32

var (
	historyHeaderStyle  = lipgloss.NewStyle().Bold(true)
	historySuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	historyFailureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// HistoryCmd lists journal entries.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of entries to show."`
}

// Run prints the most recent generation attempts.
func (c *HistoryCmd) Run(rt *runtime) error {
	path := rt.store.Settings.JournalPath()
	if path == "" {
		return errors.New("journal is disabled (journal.enabled=false)")
	}

	store, err := journal.Open(path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()

	entries, err := usecase.NewJournalService(store).Recent(rt.ctx, c.Limit)
	if err != nil {
		return err
	}
	writeHistory(os.Stdout, entries)
	return nil
}

func writeHistory(w io.Writer, entries []menu.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No generations recorded yet.")
		return
	}

	fmt.Fprintln(w, historyHeaderStyle.Render(fmt.Sprintf("%-19s  %-10s  %8s  %s", "TIME", "OUTCOME", "TOOK", "SUBJECT")))
	for _, e := range entries {
		style := historySuccessStyle
		if e.Failed() {
			style = historyFailureStyle
		}
		subject := textutil.Truncate(textutil.SingleLine(e.Subject), historySubjectWidth)
		line := fmt.Sprintf("%-19s  %s  %8s  %s",
			e.CreatedAt.Local().Format(time.DateTime),
			style.Render(fmt.Sprintf("%-10s", e.Outcome)),
			e.Duration.Round(time.Millisecond),
			subject,
		)
		if e.Failed() && e.Detail != "" {
			line += "\n" + strings.Repeat(" ", 21) + historyFailureStyle.Render(e.Detail)
		}
		fmt.Fprintln(w, line)
	}
}
