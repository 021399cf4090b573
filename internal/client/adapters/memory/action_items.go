package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
)

// CreateActionItem создает задачу, при необходимости привязанную к заметке.
func (b *Backend) CreateActionItem(ctx context.Context, draft entities.ActionItemDraft) (entities.ActionItem, error) {
	const op = "memory.CreateActionItem"
	if err := ctxErr(ctx, op); err != nil {
		return entities.ActionItem{}, err
	}
	if err := draft.Validate(); err != nil {
		return entities.ActionItem{}, errs.Validation(op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if draft.NoteID != "" {
		if _, ok := b.notes[draft.NoteID]; !ok {
			return entities.ActionItem{}, errs.NotFound(op, ErrMsgNoteNotFound)
		}
	}

	now := b.now()
	item := entities.ActionItem{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		NoteID:    draft.NoteID,
		CreatedAt: &now,
	}
	b.putItem(item)
	return item.Clone(), nil
}

// GetActionItem возвращает задачу по id.
func (b *Backend) GetActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	const op = "memory.GetActionItem"
	if err := ctxErr(ctx, op); err != nil {
		return entities.ActionItem{}, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.items[id]
	if !ok {
		return entities.ActionItem{}, errs.NotFound(op, ErrMsgActionItemNotFound)
	}
	return rec.item.Clone(), nil
}

// ListActionItems повторяет правила выборки бэкенда: фильтр по заметке
// имеет приоритет и отдает задачи от старых к новым, incomplete_only
// отдает самые старые незавершенные, иначе все задачи, новые первыми.
func (b *Backend) ListActionItems(ctx context.Context, filter entities.ActionItemFilter) ([]entities.ActionItem, error) {
	if err := ctxErr(ctx, "memory.ListActionItems"); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	switch {
	case filter.NoteID != "":
		return b.itemsOfNoteLocked(filter.NoteID), nil
	case filter.IncompleteOnly:
		return b.incompleteLocked(filter.Limit), nil
	default:
		out := collect(b.items, func(*itemRecord) bool { return true },
			func(x, y *itemRecord) int { return newestFirst(createdAt(x.item), createdAt(y.item), x.seq, y.seq) },
			cloneItem)
		return limit(out, filter.Limit), nil
	}
}

// IncompleteActionItems возвращает незавершенные задачи, старые первыми.
// Лимит <= 0 заменяется на DefaultIncompleteLimit.
func (b *Backend) IncompleteActionItems(ctx context.Context, n int) ([]entities.ActionItem, error) {
	if err := ctxErr(ctx, "memory.IncompleteActionItems"); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultIncompleteLimit
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.incompleteLocked(n), nil
}

// UpdateActionItem применяет патч к задаче.
func (b *Backend) UpdateActionItem(ctx context.Context, id string, patch entities.ActionItemPatch) (entities.ActionItem, error) {
	const op = "memory.UpdateActionItem"
	if err := ctxErr(ctx, op); err != nil {
		return entities.ActionItem{}, err
	}
	if err := patch.Validate(); err != nil {
		return entities.ActionItem{}, errs.Validation(op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.items[id]
	if !ok {
		return entities.ActionItem{}, errs.NotFound(op, ErrMsgActionItemNotFound)
	}

	now := b.now()
	if patch.Title != nil {
		rec.item.Title = *patch.Title
	}
	if patch.Completed != nil && *patch.Completed != rec.item.Completed {
		rec.item.SetCompleted(*patch.Completed, now)
	}
	rec.item.UpdatedAt = &now
	return rec.item.Clone(), nil
}

// CompleteActionItem отмечает задачу выполненной.
func (b *Backend) CompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	return b.setCompleted(ctx, "memory.CompleteActionItem", id, true)
}

// UncompleteActionItem снимает отметку о выполнении.
func (b *Backend) UncompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	return b.setCompleted(ctx, "memory.UncompleteActionItem", id, false)
}

// DeleteActionItem удаляет задачу.
func (b *Backend) DeleteActionItem(ctx context.Context, id string) error {
	const op = "memory.DeleteActionItem"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.items[id]; !ok {
		return errs.NotFound(op, ErrMsgActionItemNotFound)
	}
	delete(b.items, id)
	return nil
}

func (b *Backend) setCompleted(ctx context.Context, op, id string, done bool) (entities.ActionItem, error) {
	if err := ctxErr(ctx, op); err != nil {
		return entities.ActionItem{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.items[id]
	if !ok {
		return entities.ActionItem{}, errs.NotFound(op, ErrMsgActionItemNotFound)
	}
	rec.item.SetCompleted(done, b.now())
	return rec.item.Clone(), nil
}

func (b *Backend) itemsOfNoteLocked(noteID string) []entities.ActionItem {
	return collect(b.items,
		func(r *itemRecord) bool { return r.item.NoteID == noteID },
		oldestFirst,
		cloneItem)
}

func (b *Backend) incompleteLocked(n int) []entities.ActionItem {
	out := collect(b.items,
		func(r *itemRecord) bool { return !r.item.Completed },
		oldestFirst,
		cloneItem)
	return limit(out, n)
}

func oldestFirst(x, y *itemRecord) int {
	if c := createdAt(x.item).Compare(createdAt(y.item)); c != 0 {
		return c
	}
	return cmp.Compare(x.seq, y.seq)
}

func cloneItem(r *itemRecord) entities.ActionItem {
	return r.item.Clone()
}

func limit(items []entities.ActionItem, n int) []entities.ActionItem {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
