package stores

import (
	"context"

	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
	"goodnotes/internal/client/ports/api"
)

// DefaultIncompleteLimit - размер выборки FetchIncomplete по умолчанию.
const DefaultIncompleteLimit = 5

// Сообщения, сохраняемые в поле ошибки, если у ошибки нет текста.
const (
	ErrMsgFetchActionItems   = "Failed to fetch action items"
	ErrMsgCreateActionItem   = "Failed to create action item"
	ErrMsgUpdateActionItem   = "Failed to update action item"
	ErrMsgFetchActionItem    = "Failed to fetch action item"
	ErrMsgToggleActionItem   = "Failed to toggle action item completion"
	ErrMsgDeleteActionItem   = "Failed to delete action item"
	ErrMsgActionItemNotFound = "Action item not found"
)

// ActionItemsStore кэширует задачи, полученные от бэкенда.
type ActionItemsStore struct {
	api api.ActionItemsAPI
	st  *state[entities.ActionItem]
}

// NewActionItemsStore создает пустое хранилище задач поверх itemsAPI.
func NewActionItemsStore(itemsAPI api.ActionItemsAPI) *ActionItemsStore {
	return &ActionItemsStore{
		api: itemsAPI,
		st: newState(
			func(a entities.ActionItem) string { return a.ID },
			entities.ActionItem.Clone,
		),
	}
}

// ActionItems возвращает копию коллекции.
func (s *ActionItemsStore) ActionItems() []entities.ActionItem {
	return s.st.list()
}

// CurrentActionItem возвращает копию текущей задачи.
func (s *ActionItemsStore) CurrentActionItem() (entities.ActionItem, bool) {
	return s.st.currentItem()
}

func (s *ActionItemsStore) Loading() bool {
	return s.st.isLoading()
}

func (s *ActionItemsStore) Err() error {
	return s.st.lastErr()
}

func (s *ActionItemsStore) ErrorMessage() string {
	return s.st.lastErrMessage()
}

func (s *ActionItemsStore) ClearError() {
	s.st.clearError()
}

// Subscribe вызывает fn после каждого изменения состояния.
func (s *ActionItemsStore) Subscribe(fn func()) func() {
	return s.st.subscribe(fn)
}

// Fetch загружает задачи по фильтру и заменяет ими коллекцию.
func (s *ActionItemsStore) Fetch(ctx context.Context, filter entities.ActionItemFilter) ([]entities.ActionItem, error) {
	return s.fetch(ctx, "action_items.fetch", func() ([]entities.ActionItem, error) {
		return s.api.ListActionItems(ctx, filter)
	})
}

// FetchIncomplete загружает самые старые незавершенные задачи.
// limit <= 0 заменяется на DefaultIncompleteLimit.
func (s *ActionItemsStore) FetchIncomplete(ctx context.Context, limit int) ([]entities.ActionItem, error) {
	if limit <= 0 {
		limit = DefaultIncompleteLimit
	}
	return s.fetch(ctx, "action_items.fetch_incomplete", func() ([]entities.ActionItem, error) {
		return s.api.IncompleteActionItems(ctx, limit)
	})
}

func (s *ActionItemsStore) fetch(ctx context.Context, op string, load func() ([]entities.ActionItem, error)) ([]entities.ActionItem, error) {
	return run(ctx, s.st, op, ErrMsgFetchActionItems, func() ([]entities.ActionItem, error) {
		items, err := load()
		if err != nil {
			return nil, err
		}
		s.st.replaceAll(items)
		return cloneItems(items), nil
	})
}

// Create создает задачу, добавляет ее в начало коллекции и делает текущей.
func (s *ActionItemsStore) Create(ctx context.Context, draft entities.ActionItemDraft) (entities.ActionItem, error) {
	return run(ctx, s.st, "action_items.create", ErrMsgCreateActionItem, func() (entities.ActionItem, error) {
		item, err := s.api.CreateActionItem(ctx, draft)
		if err != nil {
			return entities.ActionItem{}, err
		}
		s.st.add(item, true)
		return item.Clone(), nil
	})
}

// Update отправляет патч и заменяет задачу ответом бэкенда.
// Задача, которой нет в коллекции, не добавляется.
func (s *ActionItemsStore) Update(ctx context.Context, id string, patch entities.ActionItemPatch) (entities.ActionItem, error) {
	return run(ctx, s.st, "action_items.update", ErrMsgUpdateActionItem, func() (entities.ActionItem, error) {
		item, err := s.api.UpdateActionItem(ctx, id, patch)
		if err != nil {
			return entities.ActionItem{}, err
		}
		s.st.replace(item)
		return item.Clone(), nil
	})
}

// Get загружает задачу и делает ее текущей.
func (s *ActionItemsStore) Get(ctx context.Context, id string) (entities.ActionItem, error) {
	return run(ctx, s.st, "action_items.get", ErrMsgFetchActionItem, func() (entities.ActionItem, error) {
		item, err := s.api.GetActionItem(ctx, id)
		if err != nil {
			return entities.ActionItem{}, err
		}
		s.st.setCurrent(item)
		return item.Clone(), nil
	})
}

// ToggleCompletion переключает выполнение задачи из коллекции. Какой
// endpoint вызвать, решает локальное состояние задачи, которое может
// отставать от бэкенда.
func (s *ActionItemsStore) ToggleCompletion(ctx context.Context, id string) (entities.ActionItem, error) {
	return run(ctx, s.st, "action_items.toggle_completion", ErrMsgToggleActionItem, func() (entities.ActionItem, error) {
		local, ok := s.st.find(id)
		if !ok {
			return entities.ActionItem{}, errs.NotFound("action_items.toggle_completion", ErrMsgActionItemNotFound)
		}

		var (
			item entities.ActionItem
			err  error
		)
		if local.Completed {
			item, err = s.api.UncompleteActionItem(ctx, id)
		} else {
			item, err = s.api.CompleteActionItem(ctx, id)
		}
		if err != nil {
			return entities.ActionItem{}, err
		}
		s.st.replace(item)
		return item.Clone(), nil
	})
}

// Delete удаляет задачу на бэкенде и из коллекции.
func (s *ActionItemsStore) Delete(ctx context.Context, id string) error {
	_, err := run(ctx, s.st, "action_items.delete", ErrMsgDeleteActionItem, func() (struct{}, error) {
		if err := s.api.DeleteActionItem(ctx, id); err != nil {
			return struct{}{}, err
		}
		s.st.remove(id)
		return struct{}{}, nil
	})
	return err
}

func cloneItems(in []entities.ActionItem) []entities.ActionItem {
	out := make([]entities.ActionItem, 0, len(in))
	for _, item := range in {
		out = append(out, item.Clone())
	}
	return out
}
