package app

import "github.com/HardRise/KindHands-Bot/internal/domain/entity"

// Токены кнопок, приходящие в callback-данных
const (
	TokenDogShelter    = "DOG_SH"
	TokenCatShelter    = "CAT_SH"
	TokenDogInfo       = "DOG_INFO"
	TokenDogTakeInfo   = "DOG_TAKE_INFO"
	TokenDogSendReport = "DOG_SEND_REPORT"
	TokenCatInfo       = "CAT_INFO"
	TokenCatTakeInfo   = "CAT_TAKE_INFO"
	TokenCatSendReport = "CAT_SEND_REPORT"
	TokenCallVolunteer = "CALL_VOLUNTEER"
)

type buttonActionKind int

const (
	actionShowMenu buttonActionKind = iota
	actionContent
	actionStartReport
	actionCallVolunteer
)

// buttonAction описывает реакцию на кнопку: какое меню показать,
// какой текст подставить или какой сценарий запустить
type buttonAction struct {
	kind    buttonActionKind
	shelter entity.ShelterKind
	topic   entity.ContentTopic
	menu    entity.MenuID
	text    string
}

// buttonActions таблица реакций на кнопки.
// Токен, которого нет в таблице, игнорируется без ответа.
var buttonActions = map[string]buttonAction{
	TokenDogShelter: {kind: actionShowMenu, menu: entity.MenuDog, text: msgDogMenu},
	TokenCatShelter: {kind: actionShowMenu, menu: entity.MenuCat, text: msgCatMenu},

	TokenDogInfo:     {kind: actionContent, shelter: entity.ShelterDog, topic: entity.TopicAbout},
	TokenDogTakeInfo: {kind: actionContent, shelter: entity.ShelterDog, topic: entity.TopicAdoption},
	TokenCatInfo:     {kind: actionContent, shelter: entity.ShelterCat, topic: entity.TopicAbout},
	TokenCatTakeInfo: {kind: actionContent, shelter: entity.ShelterCat, topic: entity.TopicAdoption},

	TokenDogSendReport: {kind: actionStartReport, shelter: entity.ShelterDog},
	TokenCatSendReport: {kind: actionStartReport, shelter: entity.ShelterCat},

	TokenCallVolunteer: {kind: actionCallVolunteer},
}
