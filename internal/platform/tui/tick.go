// Package tui runs the game in a terminal through Bubble Tea. It maps key
// messages to game actions, drives the simulation from tick messages, and
// serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// RedirectMsg is sent when the enemy redirect timer expires.
type RedirectMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// redirectCmd schedules the next redirect. Only one is ever in flight, so
// a late delivery is never followed by a burst of catch-up fires.
func redirectCmd(every time.Duration) tea.Cmd {
	if every <= 0 {
		return nil
	}
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return RedirectMsg(t)
	})
}
