package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
	"github.com/nadafaclean/store-service/pkg/notify"
)

func setup(t *testing.T) MessagesService {
	t.Helper()
	store := kvstore.NewMemStore()
	log := logger.NewLogger("error", &MessagesLogHook{})
	return NewService(NewStorage(store, log), log, notify.Nop{})
}

func submit(t *testing.T, service MessagesService) *Message {
	t.Helper()
	msg, err := service.AddMessage(MessageInput{
		Name:    "خالد",
		Email:   "khaled@example.com",
		Subject: "استفسار عن التوصيل",
		Body:    "هل يوجد توصيل إلى جدة؟",
	})
	require.NoError(t, err)
	return msg
}

func TestAddMessage(t *testing.T) {
	service := setup(t)

	msg := submit(t, service)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, StatusUnread, msg.Status)
	assert.False(t, msg.Starred)
	require.Len(t, service.Messages(), 1)

	t.Run("validation", func(t *testing.T) {
		_, err := service.AddMessage(MessageInput{Email: "x@example.com", Subject: "s", Body: "b"})
		assert.ErrorIs(t, err, errNameRequired)
		_, err = service.AddMessage(MessageInput{Name: "x", Email: "x@example.com", Subject: "s"})
		assert.ErrorIs(t, err, errBodyRequired)
	})
}

func TestMessageLifecycle(t *testing.T) {
	service := setup(t)
	msg := submit(t, service)

	require.NoError(t, service.MarkAsRead(msg.ID))
	assert.Equal(t, StatusRead, service.Messages()[0].Status)

	require.NoError(t, service.MarkAsReplied(msg.ID, "نعم، التوصيل متاح"))
	stored := service.Messages()[0]
	assert.Equal(t, StatusReplied, stored.Status)
	assert.Equal(t, "نعم، التوصيل متاح", stored.Reply)

	require.NoError(t, service.ToggleStar(msg.ID))
	assert.True(t, service.Messages()[0].Starred)
	require.NoError(t, service.ToggleStar(msg.ID))
	assert.False(t, service.Messages()[0].Starred)

	require.NoError(t, service.DeleteMessage(msg.ID))
	assert.Empty(t, service.Messages())

	assert.ErrorIs(t, service.MarkAsRead(msg.ID), ErrMessageNotFound)
	assert.ErrorIs(t, service.DeleteMessage(msg.ID), ErrMessageNotFound)
}

func TestUpdateMessagePartial(t *testing.T) {
	service := setup(t)
	msg := submit(t, service)

	subject := "موضوع معدل"
	starred := true
	require.NoError(t, service.UpdateMessage(msg.ID, MessageUpdate{Subject: &subject, Starred: &starred}))

	stored := service.Messages()[0]
	assert.Equal(t, "موضوع معدل", stored.Subject)
	assert.True(t, stored.Starred)
	assert.Equal(t, msg.Body, stored.Body)
}
