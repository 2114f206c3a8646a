package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/priyanaka6261/property-portal-backend/internal/api/metrics"
	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
	"github.com/priyanaka6261/property-portal-backend/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Create handles POST /properties.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toCreateInput(req), claims)
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	return c.JSON(http.StatusCreated, toPropertyResponse(created))
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := propertyID(c)
	if err != nil {
		return err
	}

	property, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Update handles PUT /properties/:id.
//
// @Summary      Update a property (owner or admin)
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "New field values"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := propertyID(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), id, toUpdateInput(req), claims)
	if err != nil {
		metrics.PropertyMutationsTotal.WithLabelValues("update", mutationResult(err)).Inc()
		return err
	}

	metrics.PropertyMutationsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, toPropertyResponse(updated))
}

// Delete handles DELETE /properties/:id and returns the removed record.
//
// @Summary      Delete a property (owner or admin)
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := propertyID(c)
	if err != nil {
		return err
	}

	removed, err := h.service.Delete(c.Request().Context(), id, claims)
	if err != nil {
		metrics.PropertyMutationsTotal.WithLabelValues("delete", mutationResult(err)).Inc()
		return err
	}

	metrics.PropertyMutationsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, toPropertyResponse(removed))
}

// List handles GET /properties.
//
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  propertyListResponse
// @Failure      401  {object}  errorResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// ListMine handles GET /properties/my-properties.
//
// @Summary      List the caller's properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  propertyListResponse
// @Failure      401  {object}  errorResponse
// @Router       /properties/my-properties [get]
func (h *PropertyHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListByOwner(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// Search handles GET /properties/search — public, no auth required.
//
// @Summary      Search properties
// @Tags         properties
// @Produce      json
// @Param        location   query     string  false  "Case-insensitive substring match"
// @Param        min_price  query     number  false  "Inclusive lower price bound"
// @Param        max_price  query     number  false  "Inclusive upper price bound"
// @Success      200  {object}  propertyListResponse
// @Failure      400  {object}  errorResponse
// @Router       /properties/search [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	var req searchPropertiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	metrics.SearchesTotal.Inc()
	properties, err := h.service.Search(c.Request().Context(), toSearchFilter(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// Stats handles GET /properties/stats — public, no auth required.
//
// @Summary      Listing counts by status
// @Tags         properties
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /properties/stats [get]
func (h *PropertyHandler) Stats(c echo.Context) error {
	counts, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(counts))
}

func propertyID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	return id, nil
}

func mutationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrPropertyNotFound):
		return "not_found"
	default:
		return "error"
	}
}
