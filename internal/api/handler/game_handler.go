package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/review-system/internal/api/metrics"
	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
)

// GameHandler handles HTTP requests for catalog operations. Reads are
// public; writes sit behind the admin guard in the router.
type GameHandler struct {
	service ports.GameService
}

func NewGameHandler(service ports.GameService) *GameHandler {
	return &GameHandler{service: service}
}

type gameRequest struct {
	Title       string `json:"title" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	ReleaseYear int    `json:"release_year" validate:"required"`
}

type gameResponse struct {
	Message string       `json:"message"`
	Game    *domain.Game `json:"game,omitempty"`
}

// List handles GET /api/games.
//
// @Summary      List all games
// @Tags         games
// @Produce      json
// @Success      200  {array}   domain.Game
// @Router       /api/games [get]
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}

// Create handles POST /api/games (admin only).
//
// @Summary      Add a game to the catalog
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gameRequest  true  "Game details"
// @Success      200   {object}  gameResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/games [post]
func (h *GameHandler) Create(c echo.Context) error {
	req, err := bindGame(c)
	if err != nil {
		return err
	}

	game, err := h.service.Create(c.Request().Context(), ports.CreateGameInput{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
	})
	if err != nil {
		return err
	}

	metrics.GamesWrittenTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, gameResponse{Message: "game added", Game: game})
}

// Update handles PUT /api/games/:id (admin only).
//
// @Summary      Update a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Game id"
// @Param        body  body      gameRequest  true  "Game details"
// @Success      200   {object}  gameResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/games/{id} [put]
func (h *GameHandler) Update(c echo.Context) error {
	req, err := bindGame(c)
	if err != nil {
		return err
	}

	game, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CreateGameInput{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
	})
	if err != nil {
		return err
	}

	metrics.GamesWrittenTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, gameResponse{Message: "game updated", Game: game})
}

// Delete handles DELETE /api/games/:id (admin only).
//
// @Summary      Delete a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Game id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/games/{id} [delete]
func (h *GameHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.GamesWrittenTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "game deleted"})
}

func bindGame(c echo.Context) (*gameRequest, error) {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
