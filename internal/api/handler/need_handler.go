package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pllumaj/results/internal/api/metrics"
	"github.com/pllumaj/results/internal/core/ports"
)

// NeedHandler handles HTTP requests for need operations.
type NeedHandler struct {
	service ports.NeedService
}

func NewNeedHandler(service ports.NeedService) *NeedHandler {
	return &NeedHandler{service: service}
}

// List handles GET /needs — the public listing of recent needs.
//
// @Summary      List the most recent needs
// @Tags         needs
// @Produce      json
// @Success      200  {array}   needListItem
// @Failure      500  {object}  errorResponse
// @Router       /needs [get]
func (h *NeedHandler) List(c echo.Context) error {
	summaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]needListItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, needListItem{
			Need:   s.Need,
			Client: clientRef{Email: s.ClientEmail},
		})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /needs.
//
// @Summary      Post a new need
// @Tags         needs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNeedRequest  true  "Need details"
// @Success      201   {object}  domain.Need
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /needs [post]
func (h *NeedHandler) Create(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createNeedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	need, err := h.service.Create(c.Request().Context(), caller, ports.CreateNeedInput{
		Title:          req.Title,
		Description:    req.Description,
		BudgetAmount:   req.BudgetAmount,
		BudgetCurrency: req.BudgetCurrency,
		CategoryID:     req.CategoryID,
		CityID:         req.CityID,
		TimeEarliest:   req.TimeEarliest,
		TimeLatest:     req.TimeLatest,
	})
	if err != nil {
		return err
	}

	metrics.NeedsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, need)
}
