package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

const startCommand = "/start"

// Engine диспетчер диалога: превращает входящее событие и состояние
// пользователя в директивы транспорту и изменения данных.
// Между вызовами состояния не держит, события одного чата
// должны приходить строго по очереди.
type Engine struct {
	users   port.UserRepository
	reports *ReportService
	content port.ContentProvider
	log     *zap.Logger
}

// NewEngine создаёт диспетчер диалога
func NewEngine(users port.UserRepository, reports *ReportService, content port.ContentProvider, log *zap.Logger) *Engine {
	return &Engine{
		users:   users,
		reports: reports,
		content: content,
		log:     log,
	}
}

// HandleEvent обрабатывает одно входящее событие и возвращает директивы транспорту.
// Ошибка означает сбой хранилища; решение о повторе остаётся за транспортом.
func (e *Engine) HandleEvent(ctx context.Context, ev entity.Event) ([]entity.Directive, error) {
	switch ev.Kind {
	case entity.EventMessage, entity.EventCallback:
	default:
		// Событие без сообщения и без кнопки
		return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
	}

	user, err := e.users.Get(ctx, ev.ChatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user != nil && user.Blocked {
		return []entity.Directive{newMessage(ev.ChatID, fmt.Sprintf(msgBlocked, user.Name))}, nil
	}

	if ev.Kind == entity.EventCallback {
		return e.handleButton(ctx, ev, user)
	}
	return e.handleMessage(ctx, ev, user)
}

// handleMessage обрабатывает текстовые команды и свободный текст
func (e *Engine) handleMessage(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	if ev.Text == startCommand {
		return e.handleStart(ctx, ev, user)
	}
	return e.continueDialog(ctx, ev, user)
}

// handleStart регистрирует нового пользователя и показывает выбор приюта.
// Повторный /start пользователя не пересоздаёт.
func (e *Engine) handleStart(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	var out []entity.Directive

	if user == nil {
		user = entity.NewUser(ev.ChatID, ev.SenderName)
		if err := e.users.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("save user: %w", err)
		}
		e.log.Info("new user registered",
			zap.Int64("chat_id", ev.ChatID),
			zap.String("name", ev.SenderName))
		out = append(out, newMessage(ev.ChatID, fmt.Sprintf(msgGreeting, user.Name)))
	}

	out = append(out, newMenuMessage(ev.ChatID, msgChooseShelter, entity.MenuShelters))
	return out, nil
}

// continueDialog продолжает сценарий по текущему состоянию пользователя.
// Свободный текст вне сценария получает ответ по умолчанию.
func (e *Engine) continueDialog(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	if user == nil {
		return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
	}

	switch user.State {
	case entity.StateAwaitingReportPhoto:
		if ev.Photo == nil {
			return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
		}
		return e.reports.AcceptPhoto(ctx, ev, user)

	case entity.StateAwaitingReportDescription:
		if ev.Text == "" || ev.Photo != nil {
			return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
		}
		return e.reports.AcceptDescription(ctx, ev, user)
	}

	return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
}

// handleButton обрабатывает нажатие кнопки по таблице действий
func (e *Engine) handleButton(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	action, ok := buttonActions[ev.CallbackToken]
	if !ok {
		// Неизвестная или устаревшая кнопка, ответа не требуется
		return nil, nil
	}

	switch action.kind {
	case actionShowMenu:
		return []entity.Directive{editMenuMessage(ev, action.text, action.menu)}, nil

	case actionContent:
		return []entity.Directive{editMessage(ev, e.content.Get(action.shelter, action.topic))}, nil

	case actionStartReport:
		return e.reports.Begin(ctx, ev, user)

	case actionCallVolunteer:
		return e.callVolunteer(ctx, ev, user)
	}

	return nil, nil
}

// callVolunteer отмечает, что пользователю нужна помощь волонтёра.
// Повторный запрос просто подтверждается ещё раз.
func (e *Engine) callVolunteer(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	if user == nil {
		e.log.Error("help requested by unknown user", zap.Int64("chat_id", ev.ChatID))
		return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
	}

	user.NeedHelp = true
	if err := e.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return []entity.Directive{editMessage(ev, msgHelpRequested)}, nil
}
