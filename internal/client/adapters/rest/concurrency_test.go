package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEchoServer отвечает сущностью с id из пути запроса.
func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case len(parts) == 3 && parts[1] == "notes":
			_, _ = fmt.Fprintf(w, `{"id":%q,"title":"t","attendees":[],"content":"","created_at":"2024-03-01T08:00:00Z"}`, parts[2])
		case len(parts) == 4 && parts[1] == "action-items" && parts[3] == "complete":
			_, _ = fmt.Fprintf(w, `{"id":%q,"title":"t","note_id":"n1","completed":true,"completed_at":"2024-03-01T09:00:00Z"}`, parts[2])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientConcurrentCalls(t *testing.T) {
	srv := newEchoServer(t)
	c := newTestClient(t, srv)
	notes := NewNotesClient(c)
	items := NewActionItemsClient(c)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	noteIDs := make([]string, workers)
	itemIDs := make([]string, workers)
	errCh := make(chan error, workers*2)

	for i := range workers {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			note, err := notes.GetNote(ctx, fmt.Sprintf("n%d", i))
			if err != nil {
				errCh <- err
				return
			}
			noteIDs[i] = note.ID
		}(i)
		go func(i int) {
			defer wg.Done()
			item, err := items.CompleteActionItem(ctx, fmt.Sprintf("a%d", i))
			if err != nil {
				errCh <- err
				return
			}
			itemIDs[i] = item.ID
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	for i := range workers {
		assert.Equal(t, fmt.Sprintf("n%d", i), noteIDs[i])
		assert.Equal(t, fmt.Sprintf("a%d", i), itemIDs[i])
	}
}

func TestClientReleasesRequestOnce(t *testing.T) {
	srv := newEchoServer(t)
	c := newTestClient(t, srv)

	_, err := NewNotesClient(c).GetNote(context.Background(), "n1")
	require.NoError(t, err)

	first := client.AcquireRequest()
	second := client.AcquireRequest()
	defer client.ReleaseRequest(first)
	defer client.ReleaseRequest(second)
	assert.NotSame(t, first, second)
}

func TestClientReleasesRequestOnTransportFailure(t *testing.T) {
	srv := newEchoServer(t)
	c := newTestClient(t, srv)
	srv.Close()

	_, err := NewNotesClient(c).GetNote(context.Background(), "n1")
	require.Error(t, err)

	first := client.AcquireRequest()
	second := client.AcquireRequest()
	defer client.ReleaseRequest(first)
	defer client.ReleaseRequest(second)
	assert.NotSame(t, first, second)
}
