package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	adapterclipboard "github.com/contentply/contentply/internal/adapters/clipboard"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ui"
)

// sessionTracker stops the credits watch of a session once its connection closes
type sessionTracker struct {
	sessionID string
	startTime time.Time
	stopWatch func()
}

// end stops the watch and logs the session duration
func (s *sessionTracker) end() {
	s.stopWatch()
	logging.Logger.Info("SSH session ended",
		"session_id", s.sessionID,
		"duration", time.Since(s.startTime).String())
}

// endWhenDone calls end once done is closed
func (s *sessionTracker) endWhenDone(done <-chan struct{}) {
	<-done
	s.end()
}

// teaHandler creates a model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewModel(
		sess.Context(),
		s.opts.Services,
		adapterclipboard.NewTerminalClipboard(sess),
		s.opts.ErrorClearDelay,
		s.opts.ExportDir,
		false,
	)
	tracker := &sessionTracker{
		sessionID: sessionID,
		startTime: time.Now(),
		stopWatch: model.WatchCredits(),
	}
	// The session context ends on quit and on dropped connections alike
	go tracker.endWhenDone(sess.Context().Done())

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
