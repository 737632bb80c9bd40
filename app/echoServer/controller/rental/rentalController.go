package rental

import (
	"log/slog"
	"net/http"

	"glamrent/model"
	rs "glamrent/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rentals
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), rs.CreateReq{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
		Customer: model.Customer{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
	})
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		case rs.ErrInvalidRange:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "End date must be after start date"})
		case rs.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "Item is not available for the selected dates."})
		default:
			h.Log.Error("rental create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"rental": out})
}

// GET /v1/admin/rentals  (admin)
func (h *Controller) List(c echo.Context) error {
	rentals, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rentals": rentals})
}

// POST /v1/admin/rentals/:id/cancel  (admin)
func (h *Controller) Cancel(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Cancel(c.Request().Context(), id); err != nil {
		if rs.Code(err) == rs.ErrRentalNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		}
		h.Log.Error("rental cancel", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
