package telegram

import (
	"context"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/callbackquery"
	"github.com/rs/zerolog"

	"github.com/open-builders/guard-bot/internal/features/guard/models"
	"github.com/open-builders/guard-bot/internal/features/guard/service"
)

// AllowedUpdates lists the update types the handlers consume.
var AllowedUpdates = []string{"message", "callback_query", "my_chat_member"}

// Handler adapts Telegram updates to the guard service.
type Handler struct {
	svc    service.GuardService
	ctx    context.Context
	logger zerolog.Logger
}

// NewHandler binds the service. ctx is handed to every service call and is
// expected to live as long as the dispatcher.
func NewHandler(ctx context.Context, svc service.GuardService, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, ctx: ctx, logger: logger}
}

// Register adds the guard handlers to the dispatcher.
func (h *Handler) Register(d *ext.Dispatcher) {
	d.AddHandler(handlers.NewCommand("start", h.start))
	d.AddHandler(handlers.NewMessage(hasNewMembers, h.newMembers))
	d.AddHandler(handlers.NewCallback(callbackquery.All, h.callback))
	d.AddHandler(handlers.NewMyChatMember(anyChatMember, h.myChatMember))
}

// NewDispatcher creates a dispatcher that logs handler errors instead of
// stopping the update group.
func NewDispatcher(logger zerolog.Logger) *ext.Dispatcher {
	return ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			logger.Error().Err(err).Msg("handle update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
}

func (h *Handler) start(b *gotgbot.Bot, ctx *ext.Context) error {
	if ctx.EffectiveChat == nil {
		return nil
	}
	h.svc.OnStart(h.ctx, startCommand(ctx.EffectiveChat, ctx.EffectiveMessage))
	return nil
}

func (h *Handler) newMembers(b *gotgbot.Bot, ctx *ext.Context) error {
	event := membersJoined(ctx.EffectiveMessage)
	h.logger.Debug().Int64("chat_id", event.ChatID).Int("count", len(event.Members)).Msg("members joined")
	h.svc.OnMembersJoined(h.ctx, event)
	return nil
}

func (h *Handler) callback(b *gotgbot.Bot, ctx *ext.Context) error {
	activation, ok := activationFrom(ctx.CallbackQuery, ctx.EffectiveChat, ctx.EffectiveMessage)
	if !ok {
		return nil
	}
	h.svc.OnActivation(h.ctx, activation)
	return nil
}

func (h *Handler) myChatMember(b *gotgbot.Bot, ctx *ext.Context) error {
	if ctx.MyChatMember == nil {
		return nil
	}
	h.svc.OnBotMembershipChanged(h.ctx, botMembershipChange(ctx.MyChatMember))
	return nil
}

func anyChatMember(u *gotgbot.ChatMemberUpdated) bool {
	return u != nil
}

func hasNewMembers(msg *gotgbot.Message) bool {
	return msg != nil && len(msg.NewChatMembers) > 0
}

func membersJoined(msg *gotgbot.Message) models.MembersJoined {
	event := models.MembersJoined{ChatID: msg.Chat.Id}
	for _, u := range msg.NewChatMembers {
		event.Members = append(event.Members, models.Member{
			ID:        u.Id,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
		})
	}
	return event
}

// activationFrom builds an activation from a callback query. Queries from
// inline messages carry no chat and are skipped.
func activationFrom(cq *gotgbot.CallbackQuery, chat *gotgbot.Chat, msg *gotgbot.Message) (models.Activation, bool) {
	if cq == nil || chat == nil {
		return models.Activation{}, false
	}
	activation := models.Activation{
		QueryID: cq.Id,
		FromID:  cq.From.Id,
		ChatID:  chat.Id,
		Payload: cq.Data,
	}
	if msg != nil {
		activation.MessageID = msg.MessageId
	}
	return activation, true
}

func startCommand(chat *gotgbot.Chat, msg *gotgbot.Message) models.StartCommand {
	cmd := models.StartCommand{ChatID: chat.Id, ChatType: chat.Type}
	if msg != nil {
		cmd.MessageID = msg.MessageId
	}
	return cmd
}

func botMembershipChange(u *gotgbot.ChatMemberUpdated) models.BotMembershipChange {
	change := models.BotMembershipChange{
		ChatID:    u.Chat.Id,
		ChatTitle: u.Chat.Title,
	}
	if u.OldChatMember != nil {
		change.OldStatus = u.OldChatMember.GetStatus()
	}
	if u.NewChatMember != nil {
		change.NewStatus = u.NewChatMember.GetStatus()
	}
	return change
}
