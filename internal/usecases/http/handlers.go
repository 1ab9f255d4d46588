package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
)

// Lifecycle is the slice of the use-case service the transport needs.
type Lifecycle interface {
	Create(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error)
	Get(ctx context.Context, id string) (*domain.UseCase, error)
	List(ctx context.Context) ([]domain.UseCase, error)
	Update(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error)
	Delete(ctx context.Context, id string) error
}

// Handler translates lifecycle outcomes into the JSON envelope and status
// codes.
type Handler struct {
	svc Lifecycle
}

func NewHandler(svc Lifecycle) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	count := len(items)
	c.JSON(http.StatusOK, response{Success: true, Data: items, Count: &count})
}

func (h *Handler) get(c *gin.Context) {
	uc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response{Success: true, Data: uc})
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateUseCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Error: "Invalid request body"})
		return
	}

	uc, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response{
		Success: true,
		Data:    uc,
		Message: "Use case created successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	var req domain.UpdateUseCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Error: "Invalid request body"})
		return
	}

	uc, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response{
		Success: true,
		Data:    uc,
		Message: "Use case updated successfully",
	})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Use case deleted successfully",
	})
}

// fail maps service errors to status codes: validation and empty updates are
// caller-correctable, not-found is distinct, and everything else is a generic
// internal failure.
func (h *Handler) fail(c *gin.Context, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, response{Success: false, Error: vErr.Message})
	case errors.Is(err, domain.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, response{Success: false, Error: "No update data provided"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, response{Success: false, Error: "Use case not found"})
	default:
		c.JSON(http.StatusInternalServerError, response{Success: false, Error: "Internal server error"})
	}
}
