package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodnotes/internal/client/adapters/memory"
	"goodnotes/internal/client/app/dto"
	"goodnotes/internal/client/bootstrap"
)

type harness struct {
	backend *memory.Backend
}

func newHarness() *harness {
	return &harness{backend: memory.New()}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := &cli{
		out:     &out,
		backend: &bootstrap.Backend{Notes: h.backend, ActionItems: h.backend},
	}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNotesCreateAndGet(t *testing.T) {
	h := newHarness()

	out, err := h.run(t, "--json", "notes", "create", "--title", "Standup", "--attendee", "ann,bob", "--item", "Write report")
	require.NoError(t, err)

	var created dto.Note
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "Standup", created.Title)
	assert.Equal(t, []string{"ann", "bob"}, created.Attendees)
	require.Len(t, created.ActionItems, 1)

	out, err = h.run(t, "notes", "get", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "[ ] Write report")

	out, err = h.run(t, "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, created.ID)

	out, err = h.run(t, "notes", "today")
	require.NoError(t, err)
	assert.Contains(t, out, created.ID)

	out, err = h.run(t, "notes", "yesterday")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes found.")
}

func TestNotesCreateRequiresTitle(t *testing.T) {
	_, err := newHarness().run(t, "notes", "create")
	require.Error(t, err)
}

func TestNotesUpdateAndDelete(t *testing.T) {
	h := newHarness()

	out, err := h.run(t, "--json", "notes", "create", "--title", "Standup", "--content", "body")
	require.NoError(t, err)
	var created dto.Note
	require.NoError(t, json.Unmarshal([]byte(out), &created))

	out, err = h.run(t, "--json", "notes", "update", created.ID, "--title", "Retro")
	require.NoError(t, err)
	var updated dto.Note
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "Retro", updated.Title)
	assert.Equal(t, "body", updated.Content)

	_, err = h.run(t, "notes", "update", created.ID)
	require.Error(t, err)

	_, err = h.run(t, "notes", "update", "missing", "--title", "x")
	require.Error(t, err)

	out, err = h.run(t, "notes", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted note "+created.ID)

	_, err = h.run(t, "notes", "get", created.ID)
	require.Error(t, err)
}

func TestItemsLifecycle(t *testing.T) {
	h := newHarness()

	out, err := h.run(t, "--json", "items", "create", "--title", "Book room")
	require.NoError(t, err)
	var item dto.ActionItem
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	assert.False(t, item.Completed)

	out, err = h.run(t, "items", "toggle", item.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "[x] Book room")

	out, err = h.run(t, "items", "incomplete")
	require.NoError(t, err)
	assert.Contains(t, out, "No action items found.")

	out, err = h.run(t, "items", "toggle", item.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] Book room")

	out, err = h.run(t, "items", "list", "--incomplete")
	require.NoError(t, err)
	assert.Contains(t, out, item.ID)

	_, err = h.run(t, "items", "toggle", "missing")
	require.Error(t, err)

	out, err = h.run(t, "items", "delete", item.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted action item "+item.ID)
}

func TestItemsUpdate(t *testing.T) {
	h := newHarness()

	out, err := h.run(t, "--json", "items", "create", "--title", "Book room")
	require.NoError(t, err)
	var item dto.ActionItem
	require.NoError(t, json.Unmarshal([]byte(out), &item))

	out, err = h.run(t, "--json", "items", "update", item.ID, "--title", "Book big room", "--completed")
	require.NoError(t, err)
	var updated dto.ActionItem
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "Book big room", updated.Title)
	assert.True(t, updated.Completed)
	assert.NotNil(t, updated.CompletedAt)

	out, err = h.run(t, "--json", "items", "update", item.ID, "--completed=false")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "Book big room", updated.Title)
	assert.False(t, updated.Completed)

	_, err = h.run(t, "items", "update", item.ID)
	require.EqualError(t, err, ErrNothingToUpdate)

	_, err = h.run(t, "items", "update", "missing", "--title", "x")
	require.Error(t, err)
}
