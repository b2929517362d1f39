package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

const (
	defaultSubjectLimit = 20
	maxSubjectLimit     = 200
)

// CatalogService defines catalog read operations.
type CatalogService interface {
	GetWork(ctx context.Context, workID string) (model.Work, error)
	ListSubject(ctx context.Context, subject string, limit, offset int) ([]model.WorkSummary, error)
}

// Catalog handles the catalog proxy endpoints.
type Catalog struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewCatalog creates a new Catalog handler.
func NewCatalog(catalogService CatalogService, logger *logger.Logger) *Catalog {
	return &Catalog{catalogService: catalogService, logger: logger}
}

// GetWork returns a resolved work.
func (h *Catalog) GetWork(c *gin.Context) {
	work, err := h.catalogService.GetWork(c.Request.Context(), c.Param("workId"))
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// ListSubject returns one page of works filed under a subject.
func (h *Catalog) ListSubject(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultSubjectLimit)
	if err != nil || limit < 1 || limit > maxSubjectLimit {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("limit must be between 1 and "+strconv.Itoa(maxSubjectLimit)))
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("offset must be a non-negative integer"))
		return
	}

	works, err := h.catalogService.ListSubject(c.Request.Context(), c.Param("subject"), limit, offset)
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"works": works})
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
