package tui

import (
	"fmt"

	"github.com/Ngamdu/Meditouch/internal/presentation/tui/components/header"
	mainview "github.com/Ngamdu/Meditouch/internal/presentation/tui/components/main"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/metrics"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/state"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/textutil"
	"github.com/Ngamdu/Meditouch/internal/presentation/tui/view"
)

const pageTitle = "AI Menu Generator"

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Footer: m.buildFooterText(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Title: pageTitle,
		Input: m.state.Input.View(),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	props := mainview.Props{
		Width:  m.state.Viewport.Width + metrics.MainLeftPadding,
		Height: m.state.Viewport.Height,
	}

	switch {
	case m.state.Phase == state.Submitting:
		subject := textutil.Truncate(textutil.SingleLine(m.state.Subject), m.state.Width-metrics.HeaderWidthPadding-20)
		props.Body = fmt.Sprintf("\n %s Cooking up a %s menu...", m.state.Spinner.View(), subject)
	case m.state.HasResult():
		props.Body = m.state.Viewport.View()
		props.Error = m.state.Err != nil
	}
	return props
}

func (m *Model) buildFooterText() string {
	m.state.Help.Width = m.state.Width
	return state.FooterText(state.StatusText(m.state), state.FooterHelpText(m.state.Help, m.state.Keys))
}
