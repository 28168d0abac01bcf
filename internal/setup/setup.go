package setup

import (
	"time"

	"github.com/notalone-dev/notalone/internal/config"
	"github.com/notalone-dev/notalone/internal/handler"
	"github.com/notalone-dev/notalone/internal/service"
	"github.com/notalone-dev/notalone/internal/session"
	"github.com/notalone-dev/notalone/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.New(cfg.SessionKey(), time.Duration(cfg.Public.AdminSessionTTLMinutes)*time.Minute)

	story := service.NewStory(storage)
	comment := service.NewComment(storage)
	reaction := service.NewReaction(storage)
	admin := service.NewAdmin(cfg)

	h := handler.New(story, comment, reaction, admin, sessions, storage)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
	}, nil
}
