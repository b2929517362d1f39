package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deba69/BookList/internal/apierror"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
)

// ReviewService defines review operations.
type ReviewService interface {
	List(ctx context.Context, bookKey string) ([]model.Review, error)
	Add(ctx context.Context, params model.CreateReviewParams) (model.Review, error)
	Delete(ctx context.Context, bookKey, reviewID, username string) error
	AverageRatings(ctx context.Context, bookKeys []string) (map[string]*float64, error)
}

type addReviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment string   `json:"comment"`
}

type averageRatingsRequest struct {
	BookIDs json.RawMessage `json:"bookIds"`
}

// Review handles the review endpoints.
type Review struct {
	reviewService  ReviewService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewReview creates a new Review handler.
func NewReview(reviewService ReviewService, contextManager model.ContextManager, logger *logger.Logger) *Review {
	return &Review{
		reviewService:  reviewService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns the reviews of a book, newest first.
func (h *Review) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context(), c.Param("bookKey"))
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Add creates a review authored by the caller.
func (h *Review) Add(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		WriteError(c, h.logger, apierror.NewErrMissingAuthorizationToken())
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("malformed JSON body"))
		return
	}

	review, err := h.reviewService.Add(c.Request.Context(), model.CreateReviewParams{
		BookKey:  c.Param("bookKey"),
		Username: claims.Username,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Delete removes a review owned by the caller.
func (h *Review) Delete(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		WriteError(c, h.logger, apierror.NewErrMissingAuthorizationToken())
		return
	}

	err := h.reviewService.Delete(c.Request.Context(), c.Param("bookKey"), c.Param("reviewId"), claims.Username)
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AverageRatings maps each requested book id to its average rating or null.
func (h *Review) AverageRatings(c *gin.Context) {
	var req averageRatingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("bookIds must be an array"))
		return
	}

	var bookIDs []string
	if len(req.BookIDs) == 0 || req.BookIDs[0] != '[' || json.Unmarshal(req.BookIDs, &bookIDs) != nil {
		WriteError(c, h.logger, apierror.NewErrInvalidRequest("bookIds must be an array"))
		return
	}

	averages, err := h.reviewService.AverageRatings(c.Request.Context(), bookIDs)
	if err != nil {
		WriteError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, averages)
}
