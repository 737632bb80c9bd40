// Package main GlamRent API.
//
// @title           GlamRent Rental API
// @version         1.0
// @description     rental storefront (catalog, availability, rentals, admin panel).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"glamrent/app/echoServer"
	authctrl "glamrent/app/echoServer/controller/auth"
	colorctrl "glamrent/app/echoServer/controller/color"
	itemctrl "glamrent/app/echoServer/controller/item"
	rentalctrl "glamrent/app/echoServer/controller/rental"
	"glamrent/app/echoServer/validation"
	"glamrent/config"
	catalogrepo "glamrent/repository/catalog"
	colorrepo "glamrent/repository/color"
	rentalrepo "glamrent/repository/rental"
	authsvc "glamrent/service/auth"
	catalogsvc "glamrent/service/catalog"
	rentalsvc "glamrent/service/rental"
	searchsvc "glamrent/service/search"
	"glamrent/util/hash"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// stores: one JSON document per collection under DATA_DIR
	cr, err := catalogrepo.New(cfg.DataDir)
	if err != nil {
		log.Error("catalog store", "err", err)
		os.Exit(1)
	}
	clr, err := colorrepo.New(cfg.DataDir)
	if err != nil {
		log.Error("color store", "err", err)
		os.Exit(1)
	}
	rr, err := rentalrepo.New(cfg.DataDir)
	if err != nil {
		log.Error("rental store", "err", err)
		os.Exit(1)
	}

	// services
	rs := rentalsvc.New(rr, cr)
	cs := catalogsvc.New(cr, clr, rr)
	ss := searchsvc.New(cr, rs)

	adminHash, err := hash.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Error("admin password hash", "err", err)
		os.Exit(1)
	}
	as := authsvc.New(cfg.AdminUsername, adminHash, cfg.JWTSecret)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Catalog: cs, Search: ss, Rentals: rs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log}
	colorC := &colorctrl.Controller{Svc: cs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Item:   itemC,
		Rental: rentalC,
		Color:  colorC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "data_dir", cfg.DataDir, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
