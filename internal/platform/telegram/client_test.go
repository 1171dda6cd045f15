package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-builders/guard-bot/internal/features/guard/models"
)

type restrictCall struct {
	chatID, userID int64
	perms          gotgbot.ChatPermissions
}

type sendCall struct {
	chatID int64
	text   string
	opts   *gotgbot.SendMessageOpts
}

type fakeAPI struct {
	restricts []restrictCall
	sends     []sendCall
	edits     []*gotgbot.EditMessageTextOpts
	editTexts []string
	answers   []string
	err       error
}

func (f *fakeAPI) RestrictChatMember(chatId int64, userId int64, permissions gotgbot.ChatPermissions, opts *gotgbot.RestrictChatMemberOpts) (bool, error) {
	f.restricts = append(f.restricts, restrictCall{chatID: chatId, userID: userId, perms: permissions})
	return f.err == nil, f.err
}

func (f *fakeAPI) SendMessage(chatId int64, text string, opts *gotgbot.SendMessageOpts) (*gotgbot.Message, error) {
	f.sends = append(f.sends, sendCall{chatID: chatId, text: text, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	return &gotgbot.Message{MessageId: 1}, nil
}

func (f *fakeAPI) EditMessageText(text string, opts *gotgbot.EditMessageTextOpts) (*gotgbot.Message, bool, error) {
	f.editTexts = append(f.editTexts, text)
	f.edits = append(f.edits, opts)
	if f.err != nil {
		return nil, false, f.err
	}
	return &gotgbot.Message{}, true, nil
}

func (f *fakeAPI) AnswerCallbackQuery(callbackQueryId string, opts *gotgbot.AnswerCallbackQueryOpts) (bool, error) {
	f.answers = append(f.answers, callbackQueryId)
	return f.err == nil, f.err
}

func TestChatPermissions(t *testing.T) {
	restricted := ChatPermissions(models.Restricted())
	assert.Equal(t, gotgbot.ChatPermissions{}, restricted)

	open := ChatPermissions(models.Unrestricted())
	assert.True(t, open.CanSendMessages)
	assert.True(t, open.CanSendAudios)
	assert.True(t, open.CanSendDocuments)
	assert.True(t, open.CanSendPhotos)
	assert.True(t, open.CanSendVideos)
	assert.True(t, open.CanSendVideoNotes)
	assert.True(t, open.CanSendVoiceNotes)
	assert.True(t, open.CanSendPolls)
	assert.True(t, open.CanSendOtherMessages)
	assert.True(t, open.CanAddWebPagePreviews)
	assert.True(t, open.CanInviteUsers)
	assert.False(t, open.CanChangeInfo)
	assert.False(t, open.CanPinMessages)
}

func TestClientApplyProfile(t *testing.T) {
	api := &fakeAPI{}
	c := NewClient(api, zerolog.Nop())

	require.NoError(t, c.ApplyProfile(context.Background(), 100, 555, models.Restricted()))
	require.Len(t, api.restricts, 1)
	assert.Equal(t, int64(100), api.restricts[0].chatID)
	assert.Equal(t, int64(555), api.restricts[0].userID)
	assert.False(t, api.restricts[0].perms.CanSendMessages)
}

func TestClientSendMessageWithControl(t *testing.T) {
	api := &fakeAPI{}
	c := NewClient(api, zerolog.Nop())

	err := c.SendMessage(context.Background(), 100, "hi", &models.Control{Text: "Verify", Payload: "verify_user:555"})
	require.NoError(t, err)

	require.Len(t, api.sends, 1)
	opts := api.sends[0].opts
	assert.Equal(t, "HTML", opts.ParseMode)
	markup, ok := opts.ReplyMarkup.(gotgbot.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 1)
	assert.Equal(t, "Verify", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "verify_user:555", markup.InlineKeyboard[0][0].CallbackData)
}

func TestClientSendMessageWithoutControl(t *testing.T) {
	api := &fakeAPI{}
	c := NewClient(api, zerolog.Nop())

	require.NoError(t, c.SendMessage(context.Background(), 5, "hello", nil))
	require.Len(t, api.sends, 1)
	assert.Nil(t, api.sends[0].opts.ReplyMarkup)
}

func TestClientEditAndAnswer(t *testing.T) {
	api := &fakeAPI{}
	c := NewClient(api, zerolog.Nop())

	require.NoError(t, c.EditMessage(context.Background(), 100, 42, "done"))
	require.NoError(t, c.AnswerActivation(context.Background(), "q1"))

	assert.Equal(t, []string{"done"}, api.editTexts)
	assert.Equal(t, int64(100), api.edits[0].ChatId)
	assert.Equal(t, int64(42), api.edits[0].MessageId)
	assert.Equal(t, []string{"q1"}, api.answers)
}

func TestClientReplyToActivation(t *testing.T) {
	api := &fakeAPI{}
	c := NewClient(api, zerolog.Nop())

	err := c.ReplyToActivation(context.Background(), models.Activation{ChatID: 100, MessageID: 42}, "no")
	require.NoError(t, err)

	require.Len(t, api.sends, 1)
	assert.Equal(t, int64(100), api.sends[0].chatID)
	require.NotNil(t, api.sends[0].opts.ReplyParameters)
	assert.Equal(t, int64(42), api.sends[0].opts.ReplyParameters.MessageId)
}

func TestClientWrapsErrors(t *testing.T) {
	apiErr := errors.New("Bad Request: not enough rights")
	c := NewClient(&fakeAPI{err: apiErr}, zerolog.Nop())
	ctx := context.Background()

	err := c.ApplyProfile(ctx, 1, 2, models.Restricted())
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "restrictChatMember")

	assert.ErrorIs(t, c.SendMessage(ctx, 1, "x", nil), apiErr)
	assert.ErrorIs(t, c.EditMessage(ctx, 1, 2, "x"), apiErr)
	assert.ErrorIs(t, c.AnswerActivation(ctx, "q"), apiErr)
	assert.ErrorIs(t, c.ReplyToActivation(ctx, models.Activation{ChatID: 1}, "x"), apiErr)
}

func TestClientCancelledContext(t *testing.T) {
	api := &fakeAPI{}
	c := NewClient(api, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.ApplyProfile(ctx, 1, 2, models.Restricted()), context.Canceled)
	assert.Empty(t, api.restricts)
}
