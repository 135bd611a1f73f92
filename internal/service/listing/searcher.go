package listing

import (
	"context"
	"strconv"

	"fulfillment/internal/entities"
	"fulfillment/pkg/debounce"
)

// Searcher - коалесцирующий фронт для живого поиска: при шквале быстрых
// повторных запросов одного клиента выполняется и доставляет результат
// только самый свежий, вытесненные in-flight запросы отменяются.
// Коалесцирование разделено по актору: запросы разных акторов друг друга
// не вытесняют.
type Searcher struct {
	lister Lister
	calls  debounce.Group[*entities.DeliveryPage]
}

func NewSearcher(lister Lister) *Searcher {
	return &Searcher{lister: lister}
}

// Search повторяет контракт List. Вытесненный вызов получает
// debounce.ErrSuperseded - для caller это сигнал молча отбросить ответ.
func (s *Searcher) Search(
	ctx context.Context,
	actor entities.Actor,
	page int,
	pageSize int,
	filter entities.DeliveryFilter,
) (*entities.DeliveryPage, error) {
	return s.calls.Do(ctx, actorKey(actor), func(callCtx context.Context) (*entities.DeliveryPage, error) {
		return s.lister.List(callCtx, actor, page, pageSize, filter)
	})
}

func actorKey(actor entities.Actor) string {
	key := strconv.FormatInt(actor.ID, 10)
	for _, capability := range actor.Capabilities {
		key += ":" + capability.String()
	}
	return key
}
