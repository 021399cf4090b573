package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"goodnotes/internal/client/app/dto"
	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
	"goodnotes/internal/client/ports/api"
)

const (
	actionItemsPath = "/action-items"

	ErrMsgConvertActionItem = "convert action item"
)

var _ api.ActionItemsAPI = (*ActionItemsClient)(nil)

// ActionItemsClient реализует api.ActionItemsAPI поверх REST бэкенда.
type ActionItemsClient struct {
	c *Client
}

// NewActionItemsClient создает клиент задач.
func NewActionItemsClient(c *Client) *ActionItemsClient {
	return &ActionItemsClient{c: c}
}

func actionItemPath(id string) string {
	return actionItemsPath + "/" + url.PathEscape(id)
}

// CreateActionItem создает задачу (POST /action-items).
func (a *ActionItemsClient) CreateActionItem(ctx context.Context, draft entities.ActionItemDraft) (entities.ActionItem, error) {
	if err := draft.Validate(); err != nil {
		return entities.ActionItem{}, errs.Validation(fiber.MethodPost+" "+actionItemsPath, err)
	}
	return a.one(ctx, call{
		method: fiber.MethodPost,
		path:   actionItemsPath,
		body:   dto.BuildCreateActionItemRequest(draft),
	})
}

// GetActionItem возвращает задачу по id.
func (a *ActionItemsClient) GetActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	return a.one(ctx, call{method: fiber.MethodGet, path: actionItemPath(id)})
}

// ListActionItems возвращает задачи с учетом фильтра
// (GET /action-items?note_id=&incomplete_only=true&limit=).
func (a *ActionItemsClient) ListActionItems(ctx context.Context, filter entities.ActionItemFilter) ([]entities.ActionItem, error) {
	query := make(map[string]string, 3)
	if filter.NoteID != "" {
		query["note_id"] = filter.NoteID
	}
	if filter.IncompleteOnly {
		query["incomplete_only"] = "true"
	}
	if filter.Limit > 0 {
		query["limit"] = strconv.Itoa(filter.Limit)
	}
	return a.list(ctx, actionItemsPath, query)
}

// IncompleteActionItems возвращает самые старые незавершенные задачи
// (GET /action-items/incomplete?limit=N).
func (a *ActionItemsClient) IncompleteActionItems(ctx context.Context, limit int) ([]entities.ActionItem, error) {
	var query map[string]string
	if limit > 0 {
		query = map[string]string{"limit": strconv.Itoa(limit)}
	}
	return a.list(ctx, actionItemsPath+"/incomplete", query)
}

// UpdateActionItem отправляет только заданные поля патча.
func (a *ActionItemsClient) UpdateActionItem(ctx context.Context, id string, patch entities.ActionItemPatch) (entities.ActionItem, error) {
	if err := patch.Validate(); err != nil {
		return entities.ActionItem{}, errs.Validation(fiber.MethodPut+" "+actionItemPath(id), err)
	}
	return a.one(ctx, call{
		method: fiber.MethodPut,
		path:   actionItemPath(id),
		body:   dto.BuildUpdateActionItemRequest(patch),
	})
}

// CompleteActionItem отмечает задачу выполненной.
func (a *ActionItemsClient) CompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	return a.one(ctx, call{method: fiber.MethodPost, path: actionItemPath(id) + "/complete"})
}

// UncompleteActionItem снимает отметку о выполнении.
func (a *ActionItemsClient) UncompleteActionItem(ctx context.Context, id string) (entities.ActionItem, error) {
	return a.one(ctx, call{method: fiber.MethodPost, path: actionItemPath(id) + "/uncomplete"})
}

// DeleteActionItem удаляет задачу.
func (a *ActionItemsClient) DeleteActionItem(ctx context.Context, id string) error {
	var out dto.MessageResponse
	return a.c.do(ctx, call{method: fiber.MethodDelete, path: actionItemPath(id), out: &out})
}

func (a *ActionItemsClient) one(ctx context.Context, in call) (entities.ActionItem, error) {
	var out dto.ActionItem
	in.out = &out
	if err := a.c.do(ctx, in); err != nil {
		return entities.ActionItem{}, err
	}
	item, err := dto.ToDomainActionItem(out)
	if err != nil {
		return entities.ActionItem{}, errs.Transport(in.method+" "+in.path,
			fmt.Errorf("%s: %w", ErrMsgConvertActionItem, err))
	}
	return item, nil
}

func (a *ActionItemsClient) list(ctx context.Context, path string, query map[string]string) ([]entities.ActionItem, error) {
	var out []dto.ActionItem
	if err := a.c.do(ctx, call{method: fiber.MethodGet, path: path, query: query, out: &out}); err != nil {
		return nil, err
	}
	items, err := dto.ToDomainActionItems(out)
	if err != nil {
		return nil, errs.Transport(fiber.MethodGet+" "+path, fmt.Errorf("%s: %w", ErrMsgConvertActionItem, err))
	}
	return items, nil
}
