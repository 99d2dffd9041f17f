package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

func newQueueBot(handle func(ctx context.Context, update tgbotapi.Update)) *Bot {
	return &Bot{
		log:    zap.NewNop(),
		chats:  make(map[int64]*chatQueue),
		handle: handle,
	}
}

func messageUpdate(updateID int, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func TestEnqueue_KeepsArrivalOrderPerChat(t *testing.T) {
	const total = 50

	var mu sync.Mutex
	var got []int

	b := newQueueBot(func(ctx context.Context, update tgbotapi.Update) {
		mu.Lock()
		got = append(got, update.UpdateID)
		mu.Unlock()
	})

	ctx := context.Background()
	for i := 0; i < total; i++ {
		b.enqueue(ctx, 100, messageUpdate(i, 100, "фото"))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == total
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i := 0; i < total; i++ {
		require.Equal(t, i, got[i], "update %d handled out of order", i)
	}
}

func TestEnqueue_ChatsRunIndependently(t *testing.T) {
	release := make(chan struct{})

	var mu sync.Mutex
	var got []int64

	b := newQueueBot(func(ctx context.Context, update tgbotapi.Update) {
		chatID := update.FromChat().ID
		if chatID == 100 {
			<-release
		}
		mu.Lock()
		got = append(got, chatID)
		mu.Unlock()
	})

	ctx := context.Background()
	b.enqueue(ctx, 100, messageUpdate(1, 100, "первый чат ждёт"))
	b.enqueue(ctx, 200, messageUpdate(2, 200, "второй чат не ждёт"))

	// Зависший чат 100 не мешает чату 200
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == 200
	}, 2*time.Second, 10*time.Millisecond)

	close(release)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEnqueue_DropsIdleQueue(t *testing.T) {
	b := newQueueBot(func(ctx context.Context, update tgbotapi.Update) {})

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		b.enqueue(ctx, int64(100+i), messageUpdate(i, int64(100+i), "привет"))
	}

	require.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return len(b.chats) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestToEvent_Message(t *testing.T) {
	b := newQueueBot(nil)

	update := messageUpdate(1, 100, "/start")
	update.Message.From = &tgbotapi.User{FirstName: "Ann"}

	ev, ok := b.toEvent(update)
	require.True(t, ok)
	require.Equal(t, entity.EventMessage, ev.Kind)
	require.Equal(t, int64(100), ev.ChatID)
	require.Equal(t, "Ann", ev.SenderName)
	require.Equal(t, "/start", ev.Text)
}

func TestToEvent_Callback(t *testing.T) {
	b := newQueueBot(nil)

	ev, ok := b.toEvent(tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			Data: "DOG_SH",
			Message: &tgbotapi.Message{
				MessageID: 7,
				Chat:      &tgbotapi.Chat{ID: 100},
			},
		},
	})
	require.True(t, ok)
	require.Equal(t, entity.EventCallback, ev.Kind)
	require.Equal(t, int64(100), ev.ChatID)
	require.Equal(t, "DOG_SH", ev.CallbackToken)
	require.Equal(t, 7, ev.MessageID)
}

func TestToEvent_EditedMessageGetsDefaultReplyPath(t *testing.T) {
	b := newQueueBot(nil)

	// Правка сообщения — не команда и не кнопка, но чат известен:
	// движок ответит сообщением по умолчанию
	ev, ok := b.toEvent(tgbotapi.Update{
		EditedMessage: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 100},
			Text: "исправленный текст",
		},
	})
	require.True(t, ok)
	require.Equal(t, int64(100), ev.ChatID)
	require.Empty(t, ev.Kind)
}

func TestToEvent_NoChatIsDropped(t *testing.T) {
	b := newQueueBot(nil)

	_, ok := b.toEvent(tgbotapi.Update{})
	require.False(t, ok)
}
