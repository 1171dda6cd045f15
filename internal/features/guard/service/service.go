package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/open-builders/guard-bot/internal/features/guard/models"
	tgutil "github.com/open-builders/guard-bot/internal/utils/telegram"
)

type guardService struct {
	platform Platform
	events   EventPublisher
	logger   zerolog.Logger
	now      func() time.Time
}

// NewGuardService builds the guard. events may be nil, in which case bot
// lifecycle events are dropped.
func NewGuardService(platform Platform, events EventPublisher, logger zerolog.Logger) GuardService {
	return &guardService{
		platform: platform,
		events:   events,
		logger:   logger.With().Str("component", "guard").Logger(),
		now:      time.Now,
	}
}

// OnMembersJoined restricts every joined user and posts a challenge for each.
// Failures are logged per user and never stop the remaining users.
func (s *guardService) OnMembersJoined(ctx context.Context, event models.MembersJoined) {
	for _, member := range event.Members {
		log := s.logger.With().Int64("chat_id", event.ChatID).Int64("user_id", member.ID).Logger()

		if err := s.platform.ApplyProfile(ctx, event.ChatID, member.ID, models.Restricted()); err != nil {
			log.Error().Err(err).Msg("restrict member")
		}

		control := &models.Control{
			Text:    verifyButtonText,
			Payload: models.NewChallengeToken(member.ID).String(),
		}
		if err := s.platform.SendMessage(ctx, event.ChatID, promptText(member), control); err != nil {
			log.Error().Err(err).Msg("send verify prompt")
			continue
		}

		log.Info().Int("account_year", tgutil.EstimateAccountYear(member.ID)).Msg("challenge issued")
	}
}

// OnActivation handles a press on a challenge control.
func (s *guardService) OnActivation(ctx context.Context, activation models.Activation) {
	log := s.logger.With().
		Int64("chat_id", activation.ChatID).
		Int64("from_id", activation.FromID).
		Logger()

	if err := s.platform.AnswerActivation(ctx, activation.QueryID); err != nil {
		log.Error().Err(err).Msg("answer activation")
	}

	payload := models.ParsePayload(activation.Payload)
	if payload.Kind == models.PayloadUnrecognized {
		return
	}

	if activation.FromID != payload.TargetID {
		if err := s.platform.ReplyToActivation(ctx, activation, notForYouText); err != nil {
			log.Error().Err(err).Msg("reply to activation")
		}
		return
	}

	if err := s.platform.ApplyProfile(ctx, activation.ChatID, payload.TargetID, models.Unrestricted()); err != nil {
		log.Error().Err(err).Msg("unrestrict member")
	}

	if err := s.platform.EditMessage(ctx, activation.ChatID, activation.MessageID, verifiedText); err != nil {
		log.Error().Err(err).Msg("edit verify prompt")
		return
	}

	log.Debug().Msg("member verified")
}

// OnStart greets users in one-to-one chats and ignores group invocations.
func (s *guardService) OnStart(ctx context.Context, cmd models.StartCommand) {
	if !cmd.IsPrivate() {
		return
	}
	if err := s.platform.SendMessage(ctx, cmd.ChatID, greetingText, nil); err != nil {
		s.logger.Error().Err(err).Int64("chat_id", cmd.ChatID).Msg("send greeting")
	}
}

// OnBotMembershipChanged publishes bot_added / bot_removed for the chat.
func (s *guardService) OnBotMembershipChanged(ctx context.Context, change models.BotMembershipChange) {
	eventType, ok := change.EventType()
	if !ok || s.events == nil {
		return
	}

	event := models.BotEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		ChatID:     change.ChatID,
		OccurredAt: s.now().UTC(),
	}

	log := s.logger.With().Int64("chat_id", change.ChatID).Str("event", string(eventType)).Logger()
	if err := s.events.Publish(ctx, event); err != nil {
		log.Error().Err(err).Msg("publish bot event")
		return
	}
	log.Info().Str("chat_title", change.ChatTitle).Msg("bot membership changed")
}

func promptText(m models.Member) string {
	return fmt.Sprintf(promptTemplate, mentionHTML(m))
}

func mentionHTML(m models.Member) string {
	name := m.FullName()
	if name == "" {
		name = "User"
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, m.ID, escapeHTML(name))
}

func escapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
