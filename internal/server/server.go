package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nadhifr/quizadmin/config"
	"github.com/nadhifr/quizadmin/internal/handlers"
	"github.com/nadhifr/quizadmin/internal/helpers"
	"github.com/nadhifr/quizadmin/internal/middleware"
	"github.com/nadhifr/quizadmin/internal/session"
)

func Start() error {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	stores := NewStores()
	if err := stores.Seed(cfg); err != nil {
		return fmt.Errorf("failed to seed data: %v", err)
	}
	log.WithField("admin_email", cfg.AdminEmail).Info("seeded starter data")

	sessions := session.NewStore(cfg.JWTSecret, cfg.TokenTTL)

	r, err := NewRouter(stores, sessions, log)
	if err != nil {
		return err
	}

	log.WithField("port", cfg.Port).Info("starting admin console")
	return r.Run(":" + cfg.Port)
}

// NewRouter builds the engine with all routes mounted; tests drive it
// directly through httptest.
func NewRouter(stores *Stores, sessions *session.Store, log *logrus.Logger) (*gin.Engine, error) {
	if err := helpers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	setupRoutes(r, stores, sessions)
	return r, nil
}

func setupRoutes(r *gin.Engine, stores *Stores, sessions *session.Store) {
	auth := handlers.NewAuthHandler(stores.Admins, sessions)

	public := r.Group("/v1")
	{
		public.POST("/register", auth.Register)
		public.POST("/login", auth.Login)
		public.POST("/forgot-password", auth.ForgotPassword)
		public.POST("/reset-password", auth.ResetPassword)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(sessions))
	{
		protected.POST("/logout", auth.Logout)
		protected.GET("/me", auth.Me)

		handlers.NewUserResource(stores.Users).Register(protected.Group("/users"))
		handlers.NewCategoryResource(stores.Categories).Register(protected.Group("/categories"))
		handlers.NewQuestionResource(stores.Questions, stores.Categories).Register(protected.Group("/questions"))
		handlers.NewCouponResource(stores.Coupons).Register(protected.Group("/coupons"))
		handlers.NewAdminResource(stores.Admins).Register(protected.Group("/admins"))
		handlers.NewMetaDataResource(stores.MetaData).Register(protected.Group("/meta-data"))
	}
}
