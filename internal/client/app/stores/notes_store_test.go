package stores_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goodnotes/internal/client/adapters/memory"
	"goodnotes/internal/client/app/stores"
	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
)

func ptr[T any](v T) *T { return &v }

var created = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func note(id, title string) entities.Note {
	return entities.Note{ID: id, Title: title, CreatedAt: created, ActionItems: []entities.ActionItem{}}
}

func seedNotes(t *testing.T, api *mockNotesAPI, store *stores.NotesStore, notes ...entities.Note) {
	t.Helper()
	api.On("ListNotes", mock.Anything, (*time.Time)(nil)).Return(notes, nil).Once()
	_, err := store.Search(context.Background(), "")
	require.NoError(t, err)
}

func TestNotesStoreCreateOnEmptyStore(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)

	draft := entities.NoteDraft{Title: "Standup", Content: "notes"}
	api.On("CreateNote", mock.Anything, draft).Return(note("n1", "Standup"), nil).Once()

	got, err := store.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "n1", got.ID)

	notes := store.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Standup", notes[0].Title)

	current, ok := store.CurrentNote()
	require.True(t, ok)
	assert.Equal(t, notes[0].ID, current.ID)
	assert.False(t, store.Loading())
	assert.NoError(t, store.Err())
	api.AssertExpectations(t)
}

func TestNotesStoreCreateAppends(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)
	seedNotes(t, api, store, note("n1", "first"))

	api.On("CreateNote", mock.Anything, mock.Anything).Return(note("n2", "second"), nil).Once()
	_, err := store.Create(context.Background(), entities.NoteDraft{Title: "second"})
	require.NoError(t, err)

	notes := store.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[1].ID)
}

func TestNotesStoreUpdate(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)
	seedNotes(t, api, store, note("n1", "one"), note("n2", "two"))

	api.On("GetNote", mock.Anything, "n1").Return(note("n1", "one"), nil).Once()
	_, err := store.Get(context.Background(), "n1")
	require.NoError(t, err)

	patch := entities.NotePatch{Title: ptr("New")}
	api.On("UpdateNote", mock.Anything, "n1", patch).Return(note("n1", "New"), nil).Once()

	updated, err := store.Update(context.Background(), "n1", patch)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)

	notes := store.Notes()
	assert.Equal(t, "New", notes[0].Title)
	assert.Equal(t, note("n2", "two"), notes[1])

	current, ok := store.CurrentNote()
	require.True(t, ok)
	assert.Equal(t, "New", current.Title)
}

func TestNotesStoreUpdateMissingNote(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := stores.NewNotesStore(backend)

	_, err := store.Create(ctx, entities.NoteDraft{Title: "Standup"})
	require.NoError(t, err)
	before := store.Notes()

	_, err = store.Update(ctx, "note-1", entities.NotePatch{Title: ptr("New")})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, before, store.Notes())
	assert.Equal(t, memory.ErrMsgNoteNotFound, store.ErrorMessage())
}

func TestNotesStoreUpdateNotFetchedNote(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Seed([]entities.Note{note("n1", "Standup")}, nil))
	store := stores.NewNotesStore(backend)

	updated, err := store.Update(ctx, "n1", entities.NotePatch{Title: ptr("Retro")})
	require.NoError(t, err)
	assert.Equal(t, "Retro", updated.Title)
	assert.Empty(t, store.Notes())
	_, ok := store.CurrentNote()
	assert.False(t, ok)
	assert.NoError(t, store.Err())
}

func TestNotesStoreGetDoesNotTouchCollection(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)

	api.On("GetNote", mock.Anything, "n9").Return(note("n9", "remote"), nil).Once()
	_, err := store.Get(context.Background(), "n9")
	require.NoError(t, err)

	assert.Empty(t, store.Notes())
	current, ok := store.CurrentNote()
	require.True(t, ok)
	assert.Equal(t, "n9", current.ID)
}

func TestNotesStoreDelete(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		deleteID    string
		wantCurrent bool
	}{
		{name: "clears matching current", current: "n1", deleteID: "n1", wantCurrent: false},
		{name: "keeps other current", current: "n2", deleteID: "n1", wantCurrent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockNotesAPI)
			store := stores.NewNotesStore(api)
			seedNotes(t, api, store, note("n1", "one"), note("n2", "two"))

			api.On("GetNote", mock.Anything, tt.current).Return(note(tt.current, "x"), nil).Once()
			_, err := store.Get(context.Background(), tt.current)
			require.NoError(t, err)

			api.On("DeleteNote", mock.Anything, tt.deleteID).Return(nil).Once()
			require.NoError(t, store.Delete(context.Background(), tt.deleteID))

			for _, n := range store.Notes() {
				assert.NotEqual(t, tt.deleteID, n.ID)
			}
			_, ok := store.CurrentNote()
			assert.Equal(t, tt.wantCurrent, ok)
		})
	}
}

func TestNotesStoreDeleteTransportFailure(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)
	seedNotes(t, api, store, note("n1", "one"))

	apiErr := errs.HTTP("DELETE /notes/n1", 500, "")
	api.On("DeleteNote", mock.Anything, "n1").Return(apiErr).Once()

	err := store.Delete(context.Background(), "n1")
	require.Error(t, err)
	assert.Same(t, apiErr, err)
	assert.Len(t, store.Notes(), 1)
	assert.Equal(t, "API Error: 500 - Internal Server Error", store.ErrorMessage())
	assert.False(t, store.Loading())

	store.ClearError()
	assert.NoError(t, store.Err())
	assert.Empty(t, store.ErrorMessage())
}

func TestNotesStoreSearchReplacesCollection(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)
	seedNotes(t, api, store, note("n1", "one"))

	api.On("ListNotes", mock.Anything, (*time.Time)(nil)).Return([]entities.Note{note("n2", "two")}, nil).Once()
	got, err := store.Search(context.Background(), "ignored")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []entities.Note{note("n2", "two")}, store.Notes())
}

func TestNotesStoreFetchVariants(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()
	found := []entities.Note{note("d", "d")}

	tests := []struct {
		name   string
		method string
		args   []any
		call   func(store *stores.NotesStore) ([]entities.Note, error)
	}{
		{
			name:   "by date",
			method: "ListNotes",
			args:   []any{mock.Anything, &day},
			call: func(store *stores.NotesStore) ([]entities.Note, error) {
				return store.FetchByDate(ctx, day)
			},
		},
		{
			name:   "today",
			method: "TodaysNotes",
			args:   []any{mock.Anything},
			call: func(store *stores.NotesStore) ([]entities.Note, error) {
				return store.FetchToday(ctx)
			},
		},
		{
			name:   "yesterday",
			method: "YesterdaysNotes",
			args:   []any{mock.Anything},
			call: func(store *stores.NotesStore) ([]entities.Note, error) {
				return store.FetchYesterday(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockNotesAPI)
			store := stores.NewNotesStore(api)
			api.On(tt.method, tt.args...).Return(found, nil).Once()

			got, err := tt.call(store)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Len(t, store.Notes(), 1)
			api.AssertExpectations(t)
		})
	}
}

func TestNotesStoreFailureKeepsState(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)
	seedNotes(t, api, store, note("n1", "one"))

	api.On("ListNotes", mock.Anything, (*time.Time)(nil)).Return(nil, errors.New("connection refused")).Once()
	_, err := store.Search(context.Background(), "")
	require.Error(t, err)
	assert.Len(t, store.Notes(), 1)
	assert.Equal(t, "connection refused", store.ErrorMessage())
}

func TestNotesStoreViewsAreCopies(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)
	n := note("n1", "one")
	n.Attendees = []string{"ann"}
	seedNotes(t, api, store, n)

	view := store.Notes()
	view[0].Title = "mutated"
	view[0].Attendees[0] = "bob"

	again := store.Notes()
	assert.Equal(t, "one", again[0].Title)
	assert.Equal(t, "ann", again[0].Attendees[0])
}

func TestNotesStoreSubscribe(t *testing.T) {
	api := new(mockNotesAPI)
	store := stores.NewNotesStore(api)

	var calls int
	var sawLoading bool
	cancel := store.Subscribe(func() {
		calls++
		if store.Loading() {
			sawLoading = true
		}
	})

	seedNotes(t, api, store, note("n1", "one"))
	assert.Positive(t, calls)
	assert.True(t, sawLoading)

	cancel()
	cancel()
	before := calls
	store.ClearError()
	assert.Equal(t, before, calls)
}
