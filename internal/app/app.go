package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadWasif123/hotel-backend/internal/config"
	httpx "github.com/MuhammadWasif123/hotel-backend/internal/http"
	"github.com/MuhammadWasif123/hotel-backend/internal/http/handlers"
	"github.com/MuhammadWasif123/hotel-backend/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()
	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close(ctx)

	authH := handlers.NewAuthHandlers(container.AuthSvc, container.Uploader, cfg.AccessTTL, cfg.RefreshTTL, "")
	jwtMW := middleware.NewAuthMW(container.TokenSvc)

	r := httpx.BuildRouter(authH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
