package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "github.com/HardRise/KindHands-Bot/internal/application"
	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

// menuMarkup собирает клавиатуру для меню, выбранного движком
func menuMarkup(menu entity.MenuID) (tgbotapi.InlineKeyboardMarkup, bool) {
	switch menu {
	case entity.MenuShelters:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Приют для собак", app.TokenDogShelter),
				tgbotapi.NewInlineKeyboardButtonData("Приют для кошек", app.TokenCatShelter),
			),
		), true

	case entity.MenuDog:
		return shelterMenu(app.TokenDogInfo, app.TokenDogTakeInfo, app.TokenDogSendReport), true

	case entity.MenuCat:
		return shelterMenu(app.TokenCatInfo, app.TokenCatTakeInfo, app.TokenCatSendReport), true
	}

	return tgbotapi.InlineKeyboardMarkup{}, false
}

// shelterMenu клавиатура меню одного приюта
func shelterMenu(infoToken, takeToken, reportToken string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Информация о приюте", infoToken),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Как взять питомца", takeToken),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отправить отчёт", reportToken),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Позвать волонтёра", app.TokenCallVolunteer),
		),
	)
}
