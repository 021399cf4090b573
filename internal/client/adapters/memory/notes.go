package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
)

// CreateNote создает заметку и ее задачи.
func (b *Backend) CreateNote(ctx context.Context, draft entities.NoteDraft) (entities.Note, error) {
	const op = "memory.CreateNote"
	if err := ctxErr(ctx, op); err != nil {
		return entities.Note{}, err
	}
	if err := draft.Validate(); err != nil {
		return entities.Note{}, errs.Validation(op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	note := entities.Note{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Content:   draft.Content,
		CreatedAt: now,
	}
	if draft.MeetingStartTime != nil {
		start := *draft.MeetingStartTime
		note.MeetingStartTime = &start
	}
	if draft.Attendees != nil {
		note.Attendees = append([]string(nil), draft.Attendees...)
	}
	b.putNote(note)
	b.createItemsLocked(note.ID, draft.ActionItems, now)

	return b.noteWithItemsLocked(note.ID), nil
}

// GetNote возвращает заметку вместе с задачами.
func (b *Backend) GetNote(ctx context.Context, id string) (entities.Note, error) {
	const op = "memory.GetNote"
	if err := ctxErr(ctx, op); err != nil {
		return entities.Note{}, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.notes[id]; !ok {
		return entities.Note{}, errs.NotFound(op, ErrMsgNoteNotFound)
	}
	return b.noteWithItemsLocked(id), nil
}

// ListNotes возвращает заметки, новые первыми. Если date задан, только
// созданные в этот календарный день. Задачи в списке не заполняются.
func (b *Backend) ListNotes(ctx context.Context, date *time.Time) ([]entities.Note, error) {
	if err := ctxErr(ctx, "memory.ListNotes"); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	keep := func(*noteRecord) bool { return true }
	if date != nil {
		day := *date
		keep = func(r *noteRecord) bool { return sameDay(r.note.CreatedAt, day) }
	}
	return b.listNotesLocked(keep), nil
}

// TodaysNotes возвращает заметки за текущий день по часам бэкенда.
func (b *Backend) TodaysNotes(ctx context.Context) ([]entities.Note, error) {
	today := b.now()
	return b.ListNotes(ctx, &today)
}

// YesterdaysNotes возвращает заметки за предыдущий день.
func (b *Backend) YesterdaysNotes(ctx context.Context) ([]entities.Note, error) {
	yesterday := b.now().AddDate(0, 0, -1)
	return b.ListNotes(ctx, &yesterday)
}

// UpdateNote применяет патч. Если в патче заданы задачи, прежние задачи
// заметки удаляются и создаются новые.
func (b *Backend) UpdateNote(ctx context.Context, id string, patch entities.NotePatch) (entities.Note, error) {
	const op = "memory.UpdateNote"
	if err := ctxErr(ctx, op); err != nil {
		return entities.Note{}, err
	}
	if err := patch.Validate(); err != nil {
		return entities.Note{}, errs.Validation(op, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.notes[id]
	if !ok {
		return entities.Note{}, errs.NotFound(op, ErrMsgNoteNotFound)
	}

	now := b.now()
	rec.note = patch.Apply(rec.note, now)
	if patch.ActionItems != nil {
		b.deleteItemsOfNoteLocked(id)
		b.createItemsLocked(id, *patch.ActionItems, now)
	}
	return b.noteWithItemsLocked(id), nil
}

// DeleteNote удаляет заметку и все ее задачи.
func (b *Backend) DeleteNote(ctx context.Context, id string) error {
	const op = "memory.DeleteNote"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notes[id]; !ok {
		return errs.NotFound(op, ErrMsgNoteNotFound)
	}
	b.deleteItemsOfNoteLocked(id)
	delete(b.notes, id)
	return nil
}

func (b *Backend) listNotesLocked(keep func(*noteRecord) bool) []entities.Note {
	return collect(b.notes, keep,
		func(x, y *noteRecord) int { return newestFirst(x.note.CreatedAt, y.note.CreatedAt, x.seq, y.seq) },
		func(r *noteRecord) entities.Note {
			n := r.note.Clone()
			n.ActionItems = []entities.ActionItem{}
			return n
		})
}

func (b *Backend) noteWithItemsLocked(id string) entities.Note {
	n := b.notes[id].note.Clone()
	n.ActionItems = b.itemsOfNoteLocked(id)
	return n
}

func (b *Backend) createItemsLocked(noteID string, drafts []entities.ActionItemDraft, now time.Time) {
	for _, d := range drafts {
		created := now
		b.putItem(entities.ActionItem{
			ID:        uuid.NewString(),
			Title:     d.Title,
			NoteID:    noteID,
			CreatedAt: &created,
		})
	}
}

func (b *Backend) deleteItemsOfNoteLocked(noteID string) {
	for id, rec := range b.items {
		if rec.item.NoteID == noteID {
			delete(b.items, id)
		}
	}
}
