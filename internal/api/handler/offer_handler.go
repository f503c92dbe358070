package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pllumaj/results/internal/api/metrics"
	"github.com/pllumaj/results/internal/core/ports"
)

// OfferHandler handles HTTP requests for the offer lifecycle.
type OfferHandler struct {
	service ports.OfferService
}

func NewOfferHandler(service ports.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// Create handles POST /offers.
//
// @Summary      Send an offer on a need
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOfferRequest  true  "Offer details"
// @Success      201   {object}  ports.OfferView
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /offers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Amount and message bounds are checked by the service so the exact
	// error messages come from one place.
	view, err := h.service.Create(c.Request().Context(), caller, ports.CreateOfferInput{
		NeedID:   req.NeedID,
		Amount:   req.Amount,
		Message:  req.Message,
		Currency: req.Currency,
	})
	if err != nil {
		return err
	}

	metrics.OffersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, view)
}

// ListForNeed handles GET /offers/for-need/:needId.
//
// @Summary      List offers on a need
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        needId  path      string  true  "Need id"
// @Success      200     {array}   ports.OfferForNeed
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /offers/for-need/{needId} [get]
func (h *OfferHandler) ListForNeed(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	offers, err := h.service.ListForNeed(c.Request().Context(), caller, c.Param("needId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// ListMine handles GET /offers/mine.
//
// @Summary      List the calling expert's offers
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.OfferMine
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /offers/mine [get]
func (h *OfferHandler) ListMine(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	offers, err := h.service.ListMine(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// Respond handles PATCH /offers/:id — accept or decline an offer.
//
// @Summary      Respond to an offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Offer id"
// @Param        body  body      respondOfferRequest  true  "accept or decline"
// @Success      200   {object}  ports.OfferView
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /offers/{id} [patch]
func (h *OfferHandler) Respond(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req respondOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// The body may carry either an action (accept/decline) or a target
	// status (accepted/declined); action wins when both are present.
	action := req.Action
	if action == "" {
		action = req.Status
	}

	view, err := h.service.Respond(c.Request().Context(), caller, c.Param("id"), action)
	if err != nil {
		return err
	}

	metrics.OfferResponsesTotal.WithLabelValues(string(view.Status)).Inc()
	return c.JSON(http.StatusOK, view)
}
