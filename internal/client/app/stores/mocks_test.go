package stores_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"goodnotes/internal/client/domain/entities"
)

type mockNotesAPI struct {
	mock.Mock
}

func (m *mockNotesAPI) CreateNote(ctx context.Context, draft entities.NoteDraft) (entities.Note, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(entities.Note), args.Error(1)
}

func (m *mockNotesAPI) GetNote(ctx context.Context, id string) (entities.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Note), args.Error(1)
}

func (m *mockNotesAPI) ListNotes(ctx context.Context, date *time.Time) ([]entities.Note, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNotesAPI) TodaysNotes(ctx context.Context) ([]entities.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNotesAPI) YesterdaysNotes(ctx context.Context) ([]entities.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Note), args.Error(1)
}

func (m *mockNotesAPI) UpdateNote(ctx context.Context, id string, patch entities.NotePatch) (entities.Note, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(entities.Note), args.Error(1)
}

func (m *mockNotesAPI) DeleteNote(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockActionItemsAPI struct {
	mock.Mock
}

func (m *mockActionItemsAPI) CreateActionItem(ctx context.Context, draft entities.ActionItemDraft) (entities.ActionItem, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) GetActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) ListActionItems(ctx context.Context, filter entities.ActionItemFilter) ([]entities.ActionItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) IncompleteActionItems(ctx context.Context, limit int) ([]entities.ActionItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) UpdateActionItem(ctx context.Context, id string, patch entities.ActionItemPatch) (entities.ActionItem, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) CompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) UncompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.ActionItem), args.Error(1)
}

func (m *mockActionItemsAPI) DeleteActionItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
