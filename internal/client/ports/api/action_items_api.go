package api

import (
	"context"

	"goodnotes/internal/client/domain/entities"
)

// ActionItemsAPI определяет операции над задачами на стороне бэкенда.
type ActionItemsAPI interface {
	CreateActionItem(ctx context.Context, draft entities.ActionItemDraft) (entities.ActionItem, error)

	GetActionItem(ctx context.Context, id string) (entities.ActionItem, error)

	ListActionItems(ctx context.Context, filter entities.ActionItemFilter) ([]entities.ActionItem, error)

	// IncompleteActionItems возвращает самые старые незавершенные задачи.
	IncompleteActionItems(ctx context.Context, limit int) ([]entities.ActionItem, error)

	UpdateActionItem(ctx context.Context, id string, patch entities.ActionItemPatch) (entities.ActionItem, error)

	CompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error)

	UncompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error)

	DeleteActionItem(ctx context.Context, id string) error
}
