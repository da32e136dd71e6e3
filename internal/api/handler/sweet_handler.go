package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

func toSweetResponse(s domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
		Quantity: s.Quantity,
		ImageURL: s.ImageURL,
	}
}

func toSweetResponses(sweets []domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, toSweetResponse(s))
	}
	return out
}

// Add handles POST /api/sweets.
//
// @Summary      Add a sweet to the catalog
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Add(c echo.Context) error {
	var req sweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Add(c.Request().Context(), ports.SweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSweetResponse(*created))
}

// List handles GET /api/sweets.
//
// @Summary      List all sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  sweetResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponses(sweets))
}

// Search handles GET /api/sweets/search. All filters are optional and
// combined with AND; with none set the result equals List.
//
// @Summary      Search sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name       query  string  false  "case-insensitive substring match"
// @Param        category   query  string  false  "exact category match"
// @Param        min_price  query  number  false  "inclusive lower price bound"
// @Param        max_price  query  number  false  "inclusive upper price bound"
// @Success      200  {array}   sweetResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	filter := ports.SearchFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	var err error
	if filter.MinPrice, err = priceParam(c, "min_price"); err != nil {
		return err
	}
	if filter.MaxPrice, err = priceParam(c, "max_price"); err != nil {
		return err
	}

	sweets, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponses(sweets))
}

func priceParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a number", name))
	}
	return &v, nil
}

// Update handles PUT /api/sweets/:id.
//
// @Summary      Update a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Sweet id"
// @Param        body  body      sweetRequest  true  "New sweet fields"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req sweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Updated successfully"})
}

// Delete handles DELETE /api/sweets/:id. Admin only.
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted successfully"})
}

// Purchase handles POST /api/sweets/:id/purchase, decrementing stock by one.
//
// @Summary      Purchase one unit of a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	if err := h.service.Purchase(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Purchased successfully"})
}

// Restock handles POST /api/sweets/:id/restock?quantity=N. Admin only.
//
// @Summary      Restock a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id        path   string  true  "Sweet id"
// @Param        quantity  query  int     true  "Units to add (positive)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	amount, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be an integer")
	}

	if err := h.service.Restock(c.Request().Context(), c.Param("id"), amount); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Restocked %d units successfully", amount),
	})
}
