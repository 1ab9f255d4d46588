package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
)

// stubLifecycle implements Lifecycle with canned outcomes.
type stubLifecycle struct {
	createFn func(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error)
	getFn    func(ctx context.Context, id string) (*domain.UseCase, error)
	listFn   func(ctx context.Context) ([]domain.UseCase, error)
	updateFn func(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubLifecycle) Create(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error) {
	return s.createFn(ctx, req)
}

func (s *stubLifecycle) Get(ctx context.Context, id string) (*domain.UseCase, error) {
	return s.getFn(ctx, id)
}

func (s *stubLifecycle) List(ctx context.Context) ([]domain.UseCase, error) {
	return s.listFn(ctx)
}

func (s *stubLifecycle) Update(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubLifecycle) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(svc Lifecycle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).Register(r.Group("/api/use-cases"))
	return r
}

func sampleRecord() *domain.UseCase {
	now := time.Now().UTC()
	return &domain.UseCase{
		ID:                "uc-1",
		Title:             "A",
		ShortDescription:  "B",
		FullDescription:   "C",
		Department:        domain.DepartmentIT,
		Status:            domain.StatusIdeation,
		OwnerName:         "X",
		OwnerEmail:        "x@y.com",
		TechnologyStack:   []string{},
		Tags:              []string{},
		InternalLinks:     map[string]string{},
		RelatedUseCaseIDs: []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_List(t *testing.T) {
	svc := &stubLifecycle{
		listFn: func(ctx context.Context) ([]domain.UseCase, error) {
			return []domain.UseCase{*sampleRecord()}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/use-cases", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.Len(t, body["data"], 1)
}

func TestHandler_Get(t *testing.T) {
	t.Run("returns the record", func(t *testing.T) {
		svc := &stubLifecycle{
			getFn: func(ctx context.Context, id string) (*domain.UseCase, error) {
				return sampleRecord(), nil
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/use-cases/uc-1", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "uc-1", data["id"])
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		svc := &stubLifecycle{
			getFn: func(ctx context.Context, id string) (*domain.UseCase, error) {
				return nil, domain.ErrNotFound
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/use-cases/missing", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Use case not found", body["error"])
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("returns 201 with the created record", func(t *testing.T) {
		svc := &stubLifecycle{
			createFn: func(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error) {
				assert.Equal(t, "A", req.Title)
				return sampleRecord(), nil
			},
		}
		r := newTestRouter(svc)

		payload := `{
			"title": "A", "short_description": "B", "full_description": "C",
			"department": "IT", "status": "Ideation",
			"owner_name": "X", "owner_email": "x@y.com",
			"technology_stack": [], "tags": [], "internal_links": {}
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/use-cases", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Use case created successfully", body["message"])
	})

	t.Run("maps a validation failure to 400 with the rule message", func(t *testing.T) {
		svc := &stubLifecycle{
			createFn: func(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error) {
				return nil, domain.NewValidationError("Valid owner email is required")
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/use-cases", bytes.NewBufferString(`{"title":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Valid owner email is required", body["error"])
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		svc := &stubLifecycle{}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/use-cases", bytes.NewBufferString(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "Invalid request body", body["error"])
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("returns the merged record", func(t *testing.T) {
		svc := &stubLifecycle{
			updateFn: func(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error) {
				require.NotNil(t, req.Status)
				assert.Equal(t, domain.StatusArchived, *req.Status)
				assert.Nil(t, req.Title)
				uc := sampleRecord()
				uc.Status = domain.StatusArchived
				return uc, nil
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/use-cases/uc-1", bytes.NewBufferString(`{"status":"Archived"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "Use case updated successfully", body["message"])
	})

	t.Run("maps an empty payload to 400", func(t *testing.T) {
		svc := &stubLifecycle{
			updateFn: func(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error) {
				return nil, domain.ErrEmptyUpdate
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/use-cases/uc-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "No update data provided", body["error"])
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		svc := &stubLifecycle{
			updateFn: func(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error) {
				return nil, domain.ErrNotFound
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/use-cases/missing", bytes.NewBufferString(`{"status":"Archived"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &stubLifecycle{
			deleteFn: func(ctx context.Context, id string) error { return nil },
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/use-cases/uc-1", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "Use case deleted successfully", body["message"])
	})

	t.Run("maps internal failures to a generic 500", func(t *testing.T) {
		svc := &stubLifecycle{
			deleteFn: func(ctx context.Context, id string) error { return domain.ErrInternal },
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/use-cases/uc-1", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "Internal server error", body["error"])
	})
}
