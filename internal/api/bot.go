package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "github.com/HardRise/KindHands-Bot/internal/application"
	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

const msgFailure = "Что-то пошло не так. Попробуйте позже."

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *app.Engine
	log    *zap.Logger

	mu    sync.Mutex
	chats map[int64]*chatQueue

	handle func(ctx context.Context, update tgbotapi.Update)
}

// chatQueue очередь обновлений одного чата
type chatQueue struct {
	updates []tgbotapi.Update
	busy    bool
}

// NewBot создаёт нового бота
func NewBot(token string, engine *app.Engine, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized on account", zap.String("username", api.Self.UserName))

	b := &Bot{
		api:    api,
		engine: engine,
		log:    log,
		chats:  make(map[int64]*chatQueue),
	}
	b.handle = b.handleUpdate
	return b, nil
}

// Run запускает основной цикл обработки обновлений.
// Обновления одного чата обрабатываются в порядке прихода,
// разные чаты — параллельно.
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		chat := update.FromChat()
		if chat == nil {
			continue
		}
		b.enqueue(ctx, chat.ID, update)
	}

	return nil
}

// enqueue ставит обновление в очередь чата и при необходимости
// запускает обработчик очереди
func (b *Bot) enqueue(ctx context.Context, chatID int64, update tgbotapi.Update) {
	b.mu.Lock()

	q, exists := b.chats[chatID]
	if !exists {
		q = &chatQueue{}
		b.chats[chatID] = q
	}
	q.updates = append(q.updates, update)

	if q.busy {
		b.mu.Unlock()
		return
	}
	q.busy = true
	b.mu.Unlock()

	go b.drain(ctx, chatID, q)
}

// drain обрабатывает очередь чата строго по порядку.
// Опустевшая очередь удаляется из таблицы чатов.
func (b *Bot) drain(ctx context.Context, chatID int64, q *chatQueue) {
	for {
		b.mu.Lock()
		if len(q.updates) == 0 {
			delete(b.chats, chatID)
			b.mu.Unlock()
			return
		}
		update := q.updates[0]
		q.updates = q.updates[1:]
		b.mu.Unlock()

		b.handle(ctx, update)
	}
}

// handleUpdate обрабатывает одно обновление
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		// Убираем "часики" на нажатой кнопке
		if _, err := b.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			b.log.Warn("answer callback", zap.Error(err))
		}
	}

	ev, ok := b.toEvent(update)
	if !ok {
		return
	}

	directives, err := b.engine.HandleEvent(ctx, ev)
	if err != nil {
		b.log.Error("handle event", zap.Int64("chat_id", ev.ChatID), zap.Error(err))
		b.send(entity.Directive{Kind: entity.DirectiveNew, ChatID: ev.ChatID, Text: msgFailure})
		return
	}

	for _, d := range directives {
		b.send(d)
	}
}

// toEvent переводит обновление Telegram в обобщённое событие.
// Обновление без сообщения и без кнопки, но с известным чатом,
// отдаётся движку как есть — тот ответит сообщением по умолчанию.
func (b *Bot) toEvent(update tgbotapi.Update) (entity.Event, bool) {
	switch {
	case update.Message != nil:
		msg := update.Message

		ev := entity.Event{
			Kind:   entity.EventMessage,
			ChatID: msg.Chat.ID,
			Text:   msg.Text,
		}
		if msg.From != nil {
			ev.SenderName = msg.From.FirstName
		}

		if len(msg.Photo) > 0 {
			// Берём файл с максимальным разрешением
			photo := msg.Photo[len(msg.Photo)-1]

			data, err := b.downloadFile(photo.FileID)
			if err != nil {
				b.log.Error("download photo", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
			} else {
				ev.Photo = &entity.PhotoInput{
					Data:      data,
					MediaType: "image/jpeg",
					Taken:     time.Now(),
				}
				if ev.Text == "" {
					ev.Text = msg.Caption
				}
			}
		}
		return ev, true

	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cb := update.CallbackQuery

		ev := entity.Event{
			Kind:          entity.EventCallback,
			ChatID:        cb.Message.Chat.ID,
			CallbackToken: cb.Data,
			MessageID:     cb.Message.MessageID,
		}
		if cb.From != nil {
			ev.SenderName = cb.From.FirstName
		}
		return ev, true
	}

	if chat := update.FromChat(); chat != nil {
		return entity.Event{ChatID: chat.ID}, true
	}

	return entity.Event{}, false
}

// send выполняет директиву движка: новое сообщение либо правка существующего
func (b *Bot) send(d entity.Directive) {
	var c tgbotapi.Chattable

	switch d.Kind {
	case entity.DirectiveEdit:
		msg := tgbotapi.NewEditMessageText(d.ChatID, d.MessageID, d.Text)
		if markup, ok := menuMarkup(d.Menu); ok {
			msg.ReplyMarkup = &markup
		}
		c = msg

	default:
		msg := tgbotapi.NewMessage(d.ChatID, d.Text)
		if markup, ok := menuMarkup(d.Menu); ok {
			msg.ReplyMarkup = markup
		}
		c = msg
	}

	if _, err := b.api.Send(c); err != nil {
		b.log.Error("send message", zap.Int64("chat_id", d.ChatID), zap.Error(err))
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
