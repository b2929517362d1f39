package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

// Catalog proxies catalog reads and hides upstream failure details.
type Catalog struct {
	upstream model.Catalog
	logger   *logger.Logger
}

func NewCatalog(upstream model.Catalog, logger *logger.Logger) *Catalog {
	return &Catalog{upstream: upstream, logger: logger}
}

func (c *Catalog) GetWork(ctx context.Context, workID string) (model.Work, error) {
	if strings.TrimSpace(workID) == "" {
		return model.Work{}, apierror.NewErrMissingField("workId")
	}

	work, err := c.upstream.GetWork(ctx, workID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Work{}, apierror.NewErrBookNotFound(workID)
	}
	if err != nil {
		c.logger.Error("Catalog service: failed to load work",
			"work_id", workID,
			"error", err.Error())
		return model.Work{}, apierror.NewErrCatalogUnavailable()
	}
	return work, nil
}

func (c *Catalog) ListSubject(ctx context.Context, subject string, limit, offset int) ([]model.WorkSummary, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, apierror.NewErrMissingField("subject")
	}

	works, err := c.upstream.ListSubject(ctx, subject, limit, offset)
	if err != nil {
		// An unknown subject is reported upstream as an empty list, so a 404
		// here is as unexpected as any other failure.
		c.logger.Error("Catalog service: failed to load subject",
			"subject", subject,
			"error", err.Error())
		return nil, apierror.NewErrCatalogUnavailable()
	}
	return works, nil
}
