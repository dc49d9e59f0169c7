package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/uiseong-market/form-server/internal/config"
	"github.com/uiseong-market/form-server/internal/meta"
	"github.com/uiseong-market/form-server/internal/shared/database"
	"github.com/uiseong-market/form-server/internal/shared/docstore"
	"github.com/uiseong-market/form-server/internal/shared/hash"
	"github.com/uiseong-market/form-server/internal/shared/validator"
	"github.com/uiseong-market/form-server/internal/signup"
	"github.com/uiseong-market/form-server/internal/store"
	"github.com/uiseong-market/form-server/internal/web"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) error {
	router.SetHTMLTemplate(web.Templates())

	// Meta handler (home, health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/", metaHandler.Home)
	router.GET("/health", metaHandler.Health)

	// shared services
	engine, err := validator.New()
	if err != nil {
		return fmt.Errorf("validator 초기화 실패: %w", err)
	}
	docs := docstore.NewGormStore(db.DB, cfg.Database.QueryTimeout)
	hasher := hash.NewBcrypt(cfg.Security.BcryptCost)

	// repository
	storeRepository := store.NewStoreRepository(docs)
	userRepository := signup.NewUserRepository(docs)

	// service
	storeService := store.NewStoreService(store.NewValidator(engine), storeRepository)
	signupService := signup.NewSignupService(signup.NewValidator(engine, hasher), userRepository, docs)

	// handler
	storeHandler := store.NewStoreHandler(storeService)
	signupHandler := signup.NewSignupHandler(signupService)

	storeGroup := router.Group("/store")
	{
		storeGroup.GET("/form", storeHandler.Form)
		storeGroup.POST("/submit", storeHandler.Submit)
	}

	router.GET("/signup", signupHandler.Form)
	router.POST("/signup", signupHandler.Signup)

	return nil
}
