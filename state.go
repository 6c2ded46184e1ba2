package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"mooncalendar/lunar"
)

// State remembers, in a file, the last phase announced to the chat.
type State struct {
	Path   string
	Logger *zap.Logger
}

// Init creates an empty state file unless one already exists.
func (s State) Init() {
	if _, err := os.Stat(s.Path); err == nil {
		s.Logger.Info("state file found", zap.String("path", s.Path))
		return
	} else if !errors.Is(err, fs.ErrNotExist) {
		s.Logger.Error("can't stat state file", zap.String("path", s.Path), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.Path, nil, 0644); err != nil {
		s.Logger.Error("can't write to state file", zap.String("path", s.Path), zap.Error(err))
		return
	}
	s.Logger.Info("state file initialized", zap.String("path", s.Path))
}

// Set records p as the last announced phase.
func (s State) Set(p lunar.Phase) {
	text, err := p.MarshalText()
	if err != nil {
		s.Logger.Error("can't encode phase", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.Path, text, 0644); err != nil {
		s.Logger.Error("can't write to state file", zap.String("path", s.Path), zap.Error(err))
		return
	}
	s.Logger.Info("state file updated", zap.Stringer("phase", p))
}

// Phase returns the last announced phase. ok is false when nothing has been
// announced yet or the file can't be read.
func (s State) Phase() (p lunar.Phase, ok bool) {
	dat, err := os.ReadFile(s.Path)
	if err != nil {
		s.Logger.Error("can't read from state file", zap.String("path", s.Path), zap.Error(err))
		return 0, false
	}
	text := strings.TrimSpace(string(dat))
	if text == "" {
		return 0, false
	}
	if err := p.UnmarshalText([]byte(text)); err != nil {
		s.Logger.Warn("ignoring unknown phase in state file", zap.String("value", text))
		return 0, false
	}
	return p, true
}
