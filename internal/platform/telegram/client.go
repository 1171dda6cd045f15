package telegram

import (
	"context"
	"fmt"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/rs/zerolog"

	"github.com/open-builders/guard-bot/internal/features/guard/models"
)

// API is the part of *gotgbot.Bot used by Client.
type API interface {
	RestrictChatMember(chatId int64, userId int64, permissions gotgbot.ChatPermissions, opts *gotgbot.RestrictChatMemberOpts) (bool, error)
	SendMessage(chatId int64, text string, opts *gotgbot.SendMessageOpts) (*gotgbot.Message, error)
	EditMessageText(text string, opts *gotgbot.EditMessageTextOpts) (*gotgbot.Message, bool, error)
	AnswerCallbackQuery(callbackQueryId string, opts *gotgbot.AnswerCallbackQueryOpts) (bool, error)
}

// Client implements the guard platform on top of the Telegram Bot API.
type Client struct {
	api    API
	logger zerolog.Logger
}

func NewClient(api API, logger zerolog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger.With().Str("component", "telegram").Logger(),
	}
}

// NewBot creates a Bot API client for the token. It calls getMe to validate
// the token, so it fails fast on a bad credential.
func NewBot(token string) (*gotgbot.Bot, error) {
	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	return b, nil
}

// ApplyProfile restricts the member to the capabilities of profile.
func (c *Client) ApplyProfile(ctx context.Context, chatID, userID int64, profile models.PermissionProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.api.RestrictChatMember(chatID, userID, ChatPermissions(profile), nil); err != nil {
		return fmt.Errorf("restrictChatMember: %w", err)
	}
	c.logger.Debug().Int64("chat_id", chatID).Int64("user_id", userID).Bool("can_post", profile.CanPost()).Msg("permissions applied")
	return nil
}

// SendMessage posts an HTML message to the chat, optionally with a single inline button.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, control *models.Control) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := &gotgbot.SendMessageOpts{ParseMode: "HTML"}
	if control != nil {
		opts.ReplyMarkup = InlineKeyboard(*control)
	}
	if _, err := c.api.SendMessage(chatID, text, opts); err != nil {
		return fmt.Errorf("sendMessage: %w", err)
	}
	return nil
}

// EditMessage replaces the text of a message and drops its keyboard.
func (c *Client) EditMessage(ctx context.Context, chatID, messageID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := c.api.EditMessageText(text, &gotgbot.EditMessageTextOpts{
		ChatId:    chatID,
		MessageId: messageID,
	})
	if err != nil {
		return fmt.Errorf("editMessageText: %w", err)
	}
	return nil
}

// AnswerActivation stops the loading indicator on the pressed button.
func (c *Client) AnswerActivation(ctx context.Context, queryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.api.AnswerCallbackQuery(queryID, nil); err != nil {
		return fmt.Errorf("answerCallbackQuery: %w", err)
	}
	return nil
}

// ReplyToActivation answers in the activation's chat, quoting the message
// that carried the button.
func (c *Client) ReplyToActivation(ctx context.Context, activation models.Activation, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := &gotgbot.SendMessageOpts{}
	if activation.MessageID != 0 {
		opts.ReplyParameters = &gotgbot.ReplyParameters{
			MessageId:                activation.MessageID,
			AllowSendingWithoutReply: true,
		}
	}
	if _, err := c.api.SendMessage(activation.ChatID, text, opts); err != nil {
		return fmt.Errorf("sendMessage: %w", err)
	}
	return nil
}

// ChatPermissions maps a profile to Bot API permissions.
func ChatPermissions(p models.PermissionProfile) gotgbot.ChatPermissions {
	return gotgbot.ChatPermissions{
		CanSendMessages:       p.SendMessages,
		CanSendAudios:         p.SendAudios,
		CanSendDocuments:      p.SendDocuments,
		CanSendPhotos:         p.SendPhotos,
		CanSendVideos:         p.SendVideos,
		CanSendVideoNotes:     p.SendVideoNotes,
		CanSendVoiceNotes:     p.SendVoiceNotes,
		CanSendPolls:          p.SendPolls,
		CanSendOtherMessages:  p.SendOtherMessages,
		CanAddWebPagePreviews: p.AddWebPagePreviews,
		CanChangeInfo:         p.ChangeInfo,
		CanInviteUsers:        p.InviteUsers,
		CanPinMessages:        p.PinMessages,
	}
}

// InlineKeyboard builds a one-button keyboard for control.
func InlineKeyboard(control models.Control) gotgbot.InlineKeyboardMarkup {
	return gotgbot.InlineKeyboardMarkup{
		InlineKeyboard: [][]gotgbot.InlineKeyboardButton{{
			{Text: control.Text, CallbackData: control.Payload},
		}},
	}
}
