package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/review-system/internal/api/metrics"
	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews. Listing is public;
// creation requires the user role and takes the author from the verified
// claim, never from the body.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=10"`
}

type reviewResponse struct {
	Message string         `json:"message"`
	Review  *domain.Review `json:"review"`
}

// List handles GET /api/reviews.
//
// @Summary      List all reviews with their games
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   domain.Review
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /api/reviews (user role only).
//
// @Summary      Add a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      200   {object}  reviewResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	_, username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		Username: username,
		GameID:   req.GameID,
		Text:     req.Text,
		Rating:   req.Rating,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, reviewResponse{Message: "review added", Review: review})
}
