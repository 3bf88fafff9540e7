package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/items-api/internal/api"
	"github.com/phrazzld/items-api/internal/api/shared"
	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/mocks"
	"github.com/phrazzld/items-api/internal/service"
	"github.com/phrazzld/items-api/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(itemService service.ItemService, processor api.BatchProcessor) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		api.NewItemHandler(itemService, processor, nil).RegisterRoutes(r)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestItemHandler_CreateItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectCall     bool
	}{
		{
			name:           "valid_item",
			body:           `{"name":"Widget","description":"blue","status":"NEW","email":"a@b.com"}`,
			expectedStatus: http.StatusCreated,
			expectCall:     true,
		},
		{
			name:           "missing_email_is_accepted",
			body:           `{"name":"Widget"}`,
			expectedStatus: http.StatusCreated,
			expectCall:     true,
		},
		{
			name:           "client_id_is_ignored",
			body:           `{"id":77,"name":"Widget"}`,
			expectedStatus: http.StatusCreated,
			expectCall:     true,
		},
		{
			name:           "invalid_email",
			body:           `{"name":"Widget","email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty_email",
			body:           `{"name":"Widget","email":""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "null_email_is_absent",
			body:           `{"name":"Widget","email":null}`,
			expectedStatus: http.StatusCreated,
			expectCall:     true,
		},
		{
			name:           "malformed_json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var received *domain.Item
			svc := &mocks.MockItemService{
				CreateItemFn: func(ctx context.Context, item *domain.Item) (*domain.Item, error) {
					received = item
					saved := *item
					saved.ID = 1
					return &saved, nil
				},
			}

			w := doRequest(t, newTestRouter(svc, &mocks.MockBatchProcessor{}), http.MethodPost, "/api/items", tc.body)
			assert.Equal(t, tc.expectedStatus, w.Code)

			if !tc.expectCall {
				assert.Empty(t, svc.Calls())
				assert.Empty(t, w.Body.String())
				return
			}

			require.NotNil(t, received)
			assert.Zero(t, received.ID)

			var resp api.ItemResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, int64(1), resp.ID)
			assert.Equal(t, "Widget", resp.Name)
		})
	}
}

func TestItemHandler_GetItem(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockItemService{
		GetItemFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			if id == 1 {
				return &domain.Item{ID: 1, Name: "Widget", Status: "NEW"}, nil
			}
			return nil, service.ErrItemNotFound
		},
	}
	router := newTestRouter(svc, &mocks.MockBatchProcessor{})

	t.Run("found", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/items/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Widget", resp.Name)
	})

	t.Run("not_found_has_no_body", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/items/2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/items/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	t.Parallel()

	newService := func() *mocks.MockItemService {
		return &mocks.MockItemService{
			GetItemFn: func(ctx context.Context, id int64) (*domain.Item, error) {
				if id != 5 {
					return nil, service.ErrItemNotFound
				}
				return &domain.Item{ID: id, Name: "Widget"}, nil
			},
			UpdateItemFn: func(ctx context.Context, id int64, item *domain.Item) (*domain.Item, error) {
				if id != 5 {
					return nil, service.ErrItemNotFound
				}
				saved := *item
				saved.ID = id
				return &saved, nil
			},
		}
	}

	t.Run("path_id_wins", func(t *testing.T) {
		router := newTestRouter(newService(), &mocks.MockBatchProcessor{})
		w := doRequest(t, router, http.MethodPut, "/api/items/5", `{"id":999,"name":"Renamed"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "Renamed", resp.Name)
	})

	t.Run("missing_item", func(t *testing.T) {
		router := newTestRouter(newService(), &mocks.MockBatchProcessor{})
		w := doRequest(t, router, http.MethodPut, "/api/items/6", `{"name":"Ghost"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("invalid_payload", func(t *testing.T) {
		for _, body := range []string{`{"email":"bad"}`, `{"name":"x","email":""}`, `{"name":`} {
			svc := newService()
			router := newTestRouter(svc, &mocks.MockBatchProcessor{})
			w := doRequest(t, router, http.MethodPut, "/api/items/5", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Empty(t, w.Body.String())
			assert.Equal(t, []string{"GetItem"}, svc.Calls(), body)
		}
	})

	t.Run("missing_item_wins_over_invalid_payload", func(t *testing.T) {
		for _, body := range []string{`{"email":"bad"}`, `{"name":`} {
			svc := newService()
			router := newTestRouter(svc, &mocks.MockBatchProcessor{})
			w := doRequest(t, router, http.MethodPut, "/api/items/6", body)
			assert.Equal(t, http.StatusNotFound, w.Code, body)
			assert.Empty(t, w.Body.String())
			assert.Equal(t, []string{"GetItem"}, svc.Calls(), body)
		}
	})
}

func TestItemHandler_DeleteItem(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockItemService{
		DeleteItemFn: func(ctx context.Context, id int64) error {
			if id == 3 {
				return nil
			}
			return service.ErrItemNotFound
		},
	}
	router := newTestRouter(svc, &mocks.MockBatchProcessor{})

	w := doRequest(t, router, http.MethodDelete, "/api/items/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, router, http.MethodDelete, "/api/items/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestItemHandler_ListItems(t *testing.T) {
	t.Parallel()

	t.Run("returns_array", func(t *testing.T) {
		svc := &mocks.MockItemService{
			ListItemsFn: func(ctx context.Context) ([]*domain.Item, error) {
				return []*domain.Item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil
			},
		}
		w := doRequest(t, newTestRouter(svc, &mocks.MockBatchProcessor{}), http.MethodGet, "/api/items", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("empty_list_is_empty_array", func(t *testing.T) {
		svc := &mocks.MockItemService{
			ListItemsFn: func(ctx context.Context) ([]*domain.Item, error) { return nil, nil },
		}
		w := doRequest(t, newTestRouter(svc, &mocks.MockBatchProcessor{}), http.MethodGet, "/api/items", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store_failure", func(t *testing.T) {
		svc := &mocks.MockItemService{Err: errors.New("connection refused")}
		w := doRequest(t, newTestRouter(svc, &mocks.MockBatchProcessor{}), http.MethodGet, "/api/items", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to list items", resp.Error)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestItemHandler_ProcessItems(t *testing.T) {
	t.Parallel()

	t.Run("process_route_is_not_an_id", func(t *testing.T) {
		svc := &mocks.MockItemService{}
		processor := &mocks.MockBatchProcessor{
			Items: []domain.Item{{ID: 1, Name: "a", Status: domain.StatusProcessed}},
		}

		w := doRequest(t, newTestRouter(svc, processor), http.MethodGet, "/api/items/process", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, processor.ProcessAllCalls())
		assert.Empty(t, svc.Calls())

		var resp []api.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, domain.StatusProcessed, resp[0].Status)
	})

	t.Run("store_unavailable", func(t *testing.T) {
		processor := &mocks.MockBatchProcessor{Err: errors.New("failed to list item IDs: dial tcp: refused")}
		w := doRequest(t, newTestRouter(&mocks.MockItemService{}, processor), http.MethodGet, "/api/items/process", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// TestItemAPI_CreateThenProcess drives the real service and processor
// through the router against the in-memory store.
func TestItemAPI_CreateThenProcess(t *testing.T) {
	t.Parallel()

	itemStore := mocks.NewMockItemStore()
	svc, err := service.NewItemService(itemStore, nil, nil)
	require.NoError(t, err)
	processor, err := task.NewItemProcessor(itemStore, task.ProcessorConfig{WorkerCount: 10}, nil)
	require.NoError(t, err)
	router := newTestRouter(svc, processor)

	w := doRequest(t, router, http.MethodPost, "/api/items",
		`{"name":"Widget","description":"blue","status":"NEW","email":"w@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created api.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	w = doRequest(t, router, http.MethodGet, "/api/items/process", "")
	require.Equal(t, http.StatusOK, w.Code)
	var processed []api.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &processed))
	require.Len(t, processed, 1)
	assert.Equal(t, created.ID, processed[0].ID)
	assert.Equal(t, "Widget", processed[0].Name)
	assert.Equal(t, domain.StatusProcessed, processed[0].Status)

	w = doRequest(t, router, http.MethodGet, "/api/items/"+jsonNumber(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched api.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, domain.StatusProcessed, fetched.Status)
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
