package staging

import (
	"github.com/rs/zerolog"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification — сообщение для пользователя о результате коммита.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier пишет уведомления в журнал. Используется, когда перед
// сервисом нет интерактивного получателя.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Notify(msg Notification) {
	event := n.log.Info()
	if msg.Severity == SeverityError {
		event = n.log.Error()
	}

	event.Str("title", msg.Title).Msg(msg.Description)
}
