package models

import (
	"strings"
	"time"
)

// ChatTypePrivate is the chat type of a one-to-one conversation with the bot.
const ChatTypePrivate = "private"

// Member is a user who joined a group.
type Member struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// FullName returns first and last name joined by a space.
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// MembersJoined is raised when one or more users join a group.
type MembersJoined struct {
	ChatID  int64
	Members []Member
}

// Activation is raised when a user presses a control on a message sent by the bot.
type Activation struct {
	QueryID   string
	FromID    int64
	ChatID    int64
	MessageID int64
	Payload   string
}

// StartCommand is a /start invocation.
type StartCommand struct {
	ChatID    int64
	ChatType  string
	MessageID int64
}

// IsPrivate reports whether the command was sent in a one-to-one chat.
func (c StartCommand) IsPrivate() bool {
	return c.ChatType == ChatTypePrivate
}

// Control is an inline button attached to a message.
type Control struct {
	Text    string
	Payload string
}

// Bot membership statuses as reported by the platform.
const (
	StatusCreator       = "creator"
	StatusAdministrator = "administrator"
	StatusMember        = "member"
	StatusRestricted    = "restricted"
	StatusLeft          = "left"
	StatusKicked        = "kicked"
)

// BotMembershipChange is raised when the bot's own status in a chat changes.
type BotMembershipChange struct {
	ChatID    int64
	ChatTitle string
	OldStatus string
	NewStatus string
}

// BotEventType names an event published to the event stream.
type BotEventType string

const (
	BotEventAdded   BotEventType = "bot_added"
	BotEventRemoved BotEventType = "bot_removed"
)

// BotEvent is a bot lifecycle event consumed by other services.
type BotEvent struct {
	ID         string
	Type       BotEventType
	ChatID     int64
	OccurredAt time.Time
}

// EventType classifies a membership change. ok is false for transitions
// that are not published, e.g. member promoted to administrator.
func (c BotMembershipChange) EventType() (BotEventType, bool) {
	wasIn := isPresent(c.OldStatus)
	isIn := isPresent(c.NewStatus)
	switch {
	case !wasIn && isIn:
		return BotEventAdded, true
	case wasIn && !isIn:
		return BotEventRemoved, true
	default:
		return "", false
	}
}

func isPresent(status string) bool {
	switch status {
	case StatusCreator, StatusAdministrator, StatusMember, StatusRestricted:
		return true
	default:
		return false
	}
}
