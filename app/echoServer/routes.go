package echoServer

import (
	"net/http"

	authctrl "glamrent/app/echoServer/controller/auth"
	colorctrl "glamrent/app/echoServer/controller/color"
	itemctrl "glamrent/app/echoServer/controller/item"
	rentalctrl "glamrent/app/echoServer/controller/rental"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth   *authctrl.Controller
	Item   *itemctrl.Controller
	Rental *rentalctrl.Controller
	Color  *colorctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public storefront
	pub := e.Group("/v1")
	pub.GET("/items", c.Item.List)
	pub.GET("/items/:id", c.Item.Detail)
	pub.GET("/items/:id/availability", c.Item.Availability)
	pub.POST("/rentals", c.Rental.Create)
	pub.GET("/filters/colors", c.Color.List)

	pub.POST("/admin/login", c.Auth.Login)

	// Admin panel
	admin := e.Group("/v1")
	admin.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	admin.Use(requireAdmin)

	admin.POST("/items", c.Item.Create)
	admin.PATCH("/items/:id", c.Item.Update)
	admin.DELETE("/items/:id", c.Item.Delete)

	admin.GET("/admin/rentals", c.Rental.List)
	admin.POST("/admin/rentals/:id/cancel", c.Rental.Cancel)

	admin.POST("/filters/colors", c.Color.Add)
	admin.DELETE("/filters/colors/:name", c.Color.Remove)
}

// requireAdmin checks the role claim the login endpoint issues.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tok, ok := ctx.Get("user").(*jwt.Token)
		if !ok || tok == nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		if role, _ := claims["role"].(string); role != "admin" {
			return ctx.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		return next(ctx)
	}
}
