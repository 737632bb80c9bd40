package item

import (
	"log/slog"
	"net/http"
	"strconv"

	cs "glamrent/service/catalog"
	rs "glamrent/service/rental"
	"glamrent/service/search"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Catalog cs.Service
	Search  search.Service
	Rentals rs.Service
	V       *validator.Validate
	Log     *slog.Logger
}

// GET /v1/items
func (h *Controller) List(c echo.Context) error {
	f := search.Filters{
		Q:        c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Size:     c.QueryParam("size"),
		Color:    c.QueryParam("color"),
		Style:    c.QueryParam("style"),
		Start:    c.QueryParam("start"),
		End:      c.QueryParam("end"),
	}
	var err error
	if f.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid minPrice"})
	}
	if f.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid maxPrice"})
	}

	items, err := h.Search.Search(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("item search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	out := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		out = append(out, Summarize(it))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GET /v1/items/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	it, err := h.Catalog.Get(c.Request().Context(), id)
	if err != nil {
		if cs.Code(err) == cs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		}
		h.Log.Error("item detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": it})
}

// GET /v1/items/:id/availability
func (h *Controller) Availability(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if _, err := h.Catalog.Get(c.Request().Context(), id); err != nil {
		if cs.Code(err) == cs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		}
		h.Log.Error("item availability", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	active, err := h.Rentals.ActiveForItem(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("item availability", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	type span struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	spans := make([]span, 0, len(active))
	for _, r := range active {
		spans = append(spans, span{Start: r.Start, End: r.End})
	}
	return c.JSON(http.StatusOK, echo.Map{"rentals": spans})
}

// POST /v1/items  (admin)
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	it, err := h.Catalog.Add(c.Request().Context(), req.ToModel())
	if err != nil {
		if cs.Code(err) == cs.ErrValidation {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid item"})
		}
		h.Log.Error("item create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": it})
}

// PATCH /v1/items/:id  (admin)
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var patch UpdateItemReq
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	it, err := h.Catalog.Update(c.Request().Context(), id, patch.ToPatch())
	if err != nil {
		switch cs.Code(err) {
		case cs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		case cs.ErrActiveRentals:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Cannot update item with active rentals"})
		case cs.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid item"})
		default:
			h.Log.Error("item update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"item": it})
}

// DELETE /v1/items/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	it, err := h.Catalog.Delete(c.Request().Context(), id)
	if err != nil {
		switch cs.Code(err) {
		case cs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		case cs.ErrActiveRentals:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Cannot delete item with active rentals"})
		default:
			h.Log.Error("item delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"item": it})
}

func priceParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
