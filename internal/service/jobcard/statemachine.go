package jobcard

import "fleet/internal/entities"

type transition struct {
	from []entities.JobCardStatusType
	to   entities.JobCardStatusType
}

// transitions - статическая таблица переходов жизненного цикла карточки.
// Вся guard-логика живет здесь, а не размазана по хендлерам.
var transitions = map[entities.JobCardEventType]transition{
	entities.EventDetailViewed: {
		from: []entities.JobCardStatusType{entities.JobCardAssigned},
		to:   entities.JobCardInProgress,
	},
	entities.EventDeliveryFormOpened: {
		from: []entities.JobCardStatusType{entities.JobCardInProgress},
		to:   entities.JobCardInTransit,
	},
	entities.EventAllStopsDelivered: {
		from: []entities.JobCardStatusType{
			entities.JobCardAssigned,
			entities.JobCardInProgress,
			entities.JobCardInTransit,
		},
		to: entities.JobCardDelivered,
	},
	entities.EventCancelled: {
		from: []entities.JobCardStatusType{
			entities.JobCardAssigned,
			entities.JobCardInProgress,
			entities.JobCardInTransit,
		},
		to: entities.JobCardCancelled,
	},
}

// Next возвращает целевой статус для события. ok == false означает,
// что событие неприменимо к текущему статусу: это no-op, не ошибка,
// повторный рендер страницы не должен ничего менять.
func Next(current entities.JobCardStatusType, event entities.JobCardEventType) (entities.JobCardStatusType, bool) {
	tr, known := transitions[event]
	if !known {
		return current, false
	}
	for _, from := range tr.from {
		if current == from {
			return tr.to, true
		}
	}
	return current, false
}

// AllowedFrom возвращает исходные статусы события. Репозиторий использует
// их как guard в SQL, чтобы конкурентные повторы не применили переход дважды.
func AllowedFrom(event entities.JobCardEventType) []entities.JobCardStatusType {
	tr, known := transitions[event]
	if !known {
		return nil
	}
	return tr.from
}
