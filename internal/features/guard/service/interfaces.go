package service

import (
	"context"

	"github.com/open-builders/guard-bot/internal/features/guard/models"
)

// Platform is the subset of the messaging platform API the guard relies on.
// Every method returns the platform error as is; callers decide what to do.
type Platform interface {
	ApplyProfile(ctx context.Context, chatID, userID int64, profile models.PermissionProfile) error
	SendMessage(ctx context.Context, chatID int64, text string, control *models.Control) error
	EditMessage(ctx context.Context, chatID, messageID int64, text string) error
	AnswerActivation(ctx context.Context, queryID string) error
	ReplyToActivation(ctx context.Context, activation models.Activation, text string) error
}

// EventPublisher delivers bot lifecycle events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, event models.BotEvent) error
}

type GuardService interface {
	OnMembersJoined(ctx context.Context, event models.MembersJoined)
	OnActivation(ctx context.Context, activation models.Activation)
	OnStart(ctx context.Context, cmd models.StartCommand)
	OnBotMembershipChanged(ctx context.Context, change models.BotMembershipChange)
}
