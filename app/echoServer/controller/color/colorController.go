package color

import (
	"log/slog"
	"net/http"

	cs "glamrent/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type addColorReq struct {
	Color string `json:"color" validate:"required"`
}

// GET /v1/filters/colors
func (h *Controller) List(c echo.Context) error {
	colors, err := h.Svc.Colors(c.Request().Context())
	if err != nil {
		h.Log.Error("color list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"colors": colors})
}

// POST /v1/filters/colors  (admin)
func (h *Controller) Add(c echo.Context) error {
	var req addColorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid color"})
	}

	name, err := h.Svc.AddColor(c.Request().Context(), req.Color)
	if err != nil {
		switch cs.Code(err) {
		case cs.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid color"})
		case cs.ErrColorExists:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Already exists"})
		default:
			h.Log.Error("color add", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "color": name})
}

// DELETE /v1/filters/colors/:name  (admin)
func (h *Controller) Remove(c echo.Context) error {
	name, err := h.Svc.RemoveColor(c.Request().Context(), c.Param("name"))
	if err != nil {
		switch cs.Code(err) {
		case cs.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid color"})
		case cs.ErrColorNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		default:
			h.Log.Error("color remove", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "color": name})
}
