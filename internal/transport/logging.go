package transport

import (
	"context"
	"log/slog"
)

// LogMessenger is a stand-in collaborator for deployments without a chat
// client wired in (local runs, tests). It records every send instead of
// delivering it.
type LogMessenger struct {
	logger *slog.Logger
}

func NewLogMessenger(logger *slog.Logger) *LogMessenger {
	return &LogMessenger{logger: logger}
}

func (m *LogMessenger) SendText(_ context.Context, requesterID int64, text string) error {
	m.logger.Info("send text", "requester_id", requesterID, "text", text)
	return nil
}

func (m *LogMessenger) SendChoice(_ context.Context, requesterID int64, text string, options []string) error {
	m.logger.Info("send choice", "requester_id", requesterID, "text", text, "options", options)
	return nil
}

func (m *LogMessenger) SendPhoto(_ context.Context, requesterID int64, fileRef string) error {
	m.logger.Info("send photo", "requester_id", requesterID, "file_ref", fileRef)
	return nil
}

// LogNotifier is the admin-channel counterpart of LogMessenger.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyAdmin(_ context.Context, text string) error {
	n.logger.Info("notify admin", "text", text)
	return nil
}
