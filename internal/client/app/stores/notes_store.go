package stores

import (
	"context"
	"time"

	"go.uber.org/zap"

	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/ports/api"
	"goodnotes/pkg/logger"
)

// Константы для логирования.
const (
	LogOperationStarted   = "store: operation started"
	LogOperationFailed    = "store: operation failed"
	LogSearchQueryIgnored = "store: search query is not sent to the API"
)

// Сообщения, сохраняемые в поле ошибки, если у ошибки нет текста.
const (
	ErrMsgFetchNotes = "Failed to fetch notes"
	ErrMsgCreateNote = "Failed to create note"
	ErrMsgUpdateNote = "Failed to update note"
	ErrMsgFetchNote  = "Failed to fetch note"
	ErrMsgDeleteNote = "Failed to delete note"
)

// NotesStore кэширует заметки, полученные от бэкенда.
// Методы безопасны для параллельного вызова.
type NotesStore struct {
	api api.NotesAPI
	st  *state[entities.Note]
}

// NewNotesStore создает пустое хранилище заметок поверх notesAPI.
func NewNotesStore(notesAPI api.NotesAPI) *NotesStore {
	return &NotesStore{
		api: notesAPI,
		st: newState(
			func(n entities.Note) string { return n.ID },
			entities.Note.Clone,
		),
	}
}

// Notes возвращает копию коллекции.
func (s *NotesStore) Notes() []entities.Note {
	return s.st.list()
}

// CurrentNote возвращает копию текущей заметки.
func (s *NotesStore) CurrentNote() (entities.Note, bool) {
	return s.st.currentItem()
}

// Loading сообщает, выполняется ли операция.
func (s *NotesStore) Loading() bool {
	return s.st.isLoading()
}

// Err возвращает последнюю ошибку или nil.
func (s *NotesStore) Err() error {
	return s.st.lastErr()
}

// ErrorMessage возвращает текст последней ошибки или пустую строку.
func (s *NotesStore) ErrorMessage() string {
	return s.st.lastErrMessage()
}

// ClearError сбрасывает последнюю ошибку.
func (s *NotesStore) ClearError() {
	s.st.clearError()
}

// Subscribe вызывает fn после каждого изменения состояния.
// Возвращаемая функция отменяет подписку.
func (s *NotesStore) Subscribe(fn func()) func() {
	return s.st.subscribe(fn)
}

// Search загружает все заметки и заменяет ими коллекцию.
// Запрос пока не передается в API.
func (s *NotesStore) Search(ctx context.Context, query string) ([]entities.Note, error) {
	if query != "" {
		logger.Log(ctx).Debug(ctx, LogSearchQueryIgnored, zap.String("query", query))
	}
	return s.fetch(ctx, "notes.search", func() ([]entities.Note, error) {
		return s.api.ListNotes(ctx, nil)
	})
}

// FetchByDate загружает заметки за календарный день date.
func (s *NotesStore) FetchByDate(ctx context.Context, date time.Time) ([]entities.Note, error) {
	return s.fetch(ctx, "notes.fetch_by_date", func() ([]entities.Note, error) {
		return s.api.ListNotes(ctx, &date)
	})
}

// FetchToday загружает заметки за сегодня.
func (s *NotesStore) FetchToday(ctx context.Context) ([]entities.Note, error) {
	return s.fetch(ctx, "notes.fetch_today", func() ([]entities.Note, error) {
		return s.api.TodaysNotes(ctx)
	})
}

// FetchYesterday загружает заметки за вчера.
func (s *NotesStore) FetchYesterday(ctx context.Context) ([]entities.Note, error) {
	return s.fetch(ctx, "notes.fetch_yesterday", func() ([]entities.Note, error) {
		return s.api.YesterdaysNotes(ctx)
	})
}

func (s *NotesStore) fetch(ctx context.Context, op string, load func() ([]entities.Note, error)) ([]entities.Note, error) {
	return run(ctx, s.st, op, ErrMsgFetchNotes, func() ([]entities.Note, error) {
		notes, err := load()
		if err != nil {
			return nil, err
		}
		s.st.replaceAll(notes)
		return cloneNotes(notes), nil
	})
}

// Create создает заметку, добавляет ее в конец коллекции и делает текущей.
func (s *NotesStore) Create(ctx context.Context, draft entities.NoteDraft) (entities.Note, error) {
	return run(ctx, s.st, "notes.create", ErrMsgCreateNote, func() (entities.Note, error) {
		note, err := s.api.CreateNote(ctx, draft)
		if err != nil {
			return entities.Note{}, err
		}
		s.st.add(note, false)
		return note.Clone(), nil
	})
}

// Update отправляет патч и заменяет заметку с тем же id ответом бэкенда.
// Заметка, которой нет в коллекции, не добавляется: ошибка "not found"
// возникает, только если заметки нет и на бэкенде.
func (s *NotesStore) Update(ctx context.Context, id string, patch entities.NotePatch) (entities.Note, error) {
	return run(ctx, s.st, "notes.update", ErrMsgUpdateNote, func() (entities.Note, error) {
		note, err := s.api.UpdateNote(ctx, id, patch)
		if err != nil {
			return entities.Note{}, err
		}
		s.st.replace(note)
		return note.Clone(), nil
	})
}

// Get загружает заметку и делает ее текущей. Коллекция не меняется.
func (s *NotesStore) Get(ctx context.Context, id string) (entities.Note, error) {
	return run(ctx, s.st, "notes.get", ErrMsgFetchNote, func() (entities.Note, error) {
		note, err := s.api.GetNote(ctx, id)
		if err != nil {
			return entities.Note{}, err
		}
		s.st.setCurrent(note)
		return note.Clone(), nil
	})
}

// Delete удаляет заметку на бэкенде и из коллекции. Текущая заметка
// сбрасывается, если это она.
func (s *NotesStore) Delete(ctx context.Context, id string) error {
	_, err := run(ctx, s.st, "notes.delete", ErrMsgDeleteNote, func() (struct{}, error) {
		if err := s.api.DeleteNote(ctx, id); err != nil {
			return struct{}{}, err
		}
		s.st.remove(id)
		return struct{}{}, nil
	})
	return err
}

func cloneNotes(in []entities.Note) []entities.Note {
	out := make([]entities.Note, 0, len(in))
	for _, n := range in {
		out = append(out, n.Clone())
	}
	return out
}
