package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/pkg/utils"
)

func newInbox() (InboxServiceInterface, *recordingMail, *recordingNotifier) {
	store := seededStore()
	mail := &recordingMail{}
	notifier := &recordingNotifier{}
	return NewInboxService(store, store, mail, notifier, quietLog()), mail, notifier
}

func TestSubmitContact(t *testing.T) {
	inbox, _, notifier := newInbox()
	ctx := context.Background()

	err := inbox.SubmitContact(ctx, request_models.ContactRequest{
		Name:    " Eric ",
		Email:   "Eric@Example.com",
		Subject: "Gorilla permits",
		Message: "Are permits available in August?",
	})
	require.NoError(t, err)

	messages, err := inbox.ListMessages(ctx, request_models.ListQuery{Q: "permits"})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Eric", messages[0].Name)
	assert.Equal(t, "eric@example.com", messages[0].Email)
	assert.Equal(t, db_models.MessageUnread, messages[0].Status)
	require.Len(t, notifier.texts, 1)
	assert.Contains(t, notifier.texts[0], "Gorilla permits")
}

func TestSubscribeIsIdempotent(t *testing.T) {
	inbox, mail, _ := newInbox()
	ctx := context.Background()

	created, err := inbox.Subscribe(ctx, "New@Example.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = inbox.Subscribe(ctx, "new@example.com ")
	require.NoError(t, err)
	assert.False(t, created)

	signups, err := inbox.ListSignups(ctx, request_models.ListQuery{Q: "new@"})
	require.NoError(t, err)
	assert.Len(t, signups, 1)
	assert.Equal(t, []string{"new@example.com"}, mail.welcomes)
}

func TestMessageStatusAndDelete(t *testing.T) {
	inbox, _, _ := newInbox()
	ctx := context.Background()

	_, err := inbox.UpdateMessageStatus(ctx, "m1", "archived")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	messages, err := inbox.UpdateMessageStatus(ctx, "m1", "replied")
	require.NoError(t, err)
	assert.Equal(t, db_models.MessageReplied, messages[0].Status)

	messages, err = inbox.DeleteMessage(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, messages)

	signups, err := inbox.DeleteSignup(ctx, "n1")
	require.NoError(t, err)
	assert.Empty(t, signups)
}

func TestReplyToMessage(t *testing.T) {
	inbox, mail, _ := newInbox()
	ctx := context.Background()

	messages, err := inbox.ReplyToMessage(ctx, "m1", request_models.ReplyRequest{Body: " Yes, 10% off for groups of six. "})
	require.NoError(t, err)
	assert.Equal(t, db_models.MessageReplied, messages[0].Status)

	require.Len(t, mail.notices, 1)
	notice := mail.notices[0]
	assert.Equal(t, "amina@example.com", notice.to)
	assert.Equal(t, "Re: Group discount for a family of six", notice.subject)
	assert.Equal(t, "Yes, 10% off for groups of six.", notice.body)
	assert.Equal(t, "/tours", notice.ctaURL)

	_, err = inbox.ReplyToMessage(ctx, "missing", request_models.ReplyRequest{Body: "hi"})
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestReplyToMessageKeepsStatusWhenMailFails(t *testing.T) {
	store := seededStore()
	inbox := NewInboxService(store, store, &recordingMail{err: errors.New("smtp down")}, &recordingNotifier{}, quietLog())
	ctx := context.Background()

	_, err := inbox.ReplyToMessage(ctx, "m1", request_models.ReplyRequest{Body: "hello"})
	assert.ErrorIs(t, err, utils.ErrMailNotSent)

	messages, err := inbox.ListMessages(ctx, request_models.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, db_models.MessageUnread, messages[0].Status)
}
