package route

import (
	"database/sql"

	httpHandler "rentnest/internal/delivery/http/handler"
	"rentnest/internal/delivery/http/middleware"
	"rentnest/internal/realtime"
	mongorepo "rentnest/internal/repository/mongodb"
	repo "rentnest/internal/repository/postgresql"
	rediscache "rentnest/internal/repository/redis"
	service "rentnest/internal/service/postgresql"
	"rentnest/internal/storage"

	_ "rentnest/docs"

	"github.com/gin-gonic/gin"
	redis "github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

type Deps struct {
	DB          *sql.DB
	Mongo       *mongo.Client
	MongoDBName string
	Redis       *redis.Client
	Images      storage.ImageStore
	Hub         *realtime.Hub
	Log         zerolog.Logger
}

func SetupRoute(app *gin.Engine, deps Deps) {
	// Repositories
	userRepo := repo.NewUserRepository(deps.DB)
	profileRepo := repo.NewProfileRepository(deps.DB)
	messageRepo := repo.NewMessageRepository(deps.DB)
	ownershipRepo := repo.NewOwnershipRepository(deps.DB)
	listingRepo := repo.NewListingRepository(deps.DB)
	donationRepo := repo.NewDonationRepository(deps.DB)
	paymentRepo := repo.NewPaymentRepository(deps.DB)
	rewardRepo := repo.NewRewardRepository(deps.DB)
	queryRepo := repo.NewQueryRepository(deps.DB)

	var logRepo mongorepo.LogRepository
	if deps.Mongo != nil {
		logRepo = mongorepo.NewLogRepository(deps.Mongo, deps.MongoDBName)
	}

	var contacts service.ContactCache
	if deps.Redis != nil {
		contacts = rediscache.NewContactCache(deps.Redis)
	}

	// Services
	authService := service.NewAuthService(userRepo)
	profileService := service.NewProfileService(profileRepo, deps.Images)
	messageService := service.NewMessageService(messageRepo, userRepo, profileRepo, deps.Hub, contacts, deps.Log)
	ownershipService := service.NewOwnershipService(ownershipRepo, userRepo, profileRepo, logRepo, deps.Log)
	listingService := service.NewListingService(listingRepo, ownershipRepo, logRepo, deps.Log)
	donationService := service.NewDonationService(donationRepo)
	paymentService := service.NewPaymentService(paymentRepo, rewardRepo)
	queryService := service.NewQueryService(queryRepo)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(authService)
	profileHandler := httpHandler.NewProfileHandler(profileService)
	messageHandler := httpHandler.NewMessageHandler(messageService)
	ownershipHandler := httpHandler.NewOwnershipHandler(ownershipService)
	listingHandler := httpHandler.NewListingHandler(listingService, deps.Images)
	donationHandler := httpHandler.NewDonationHandler(donationService, deps.Images)
	paymentHandler := httpHandler.NewPaymentHandler(paymentService)
	queryHandler := httpHandler.NewQueryHandler(queryService, deps.Images)
	feedHandler := httpHandler.NewFeedHandler(deps.Hub, deps.Log)

	api := app.Group("/api")

	app.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(0),
	))

	// Authentication
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.AuthRequired(), authHandler.Me)

	// Profiles
	profiles := api.Group("/profiles", middleware.AuthRequired())
	profiles.GET("/me", profileHandler.Get)
	profiles.PUT("/me", profileHandler.Save)
	profiles.POST("/me/picture", profileHandler.UploadPicture)
	profiles.GET("/search", profileHandler.Search)
	profiles.GET("/:id", profileHandler.Public)

	// Messaging
	messages := api.Group("/messages", middleware.AuthRequired())
	messages.POST("", messageHandler.Send)
	messages.GET("/contacts", messageHandler.Contacts)
	messages.GET("/with/:id", messageHandler.Conversation)

	// Realtime feed, token rides in the query string
	app.GET("/ws", feedHandler.Serve)

	// Shared ownership
	ownership := api.Group("/ownership", middleware.AuthRequired())
	ownership.POST("/requests", ownershipHandler.SendRequest)
	ownership.POST("/requests/:id/accept", ownershipHandler.Accept)
	ownership.POST("/requests/:id/decline", ownershipHandler.Decline)
	ownership.DELETE("/owners/:id", ownershipHandler.Remove)
	ownership.GET("/owners", ownershipHandler.Owners)
	ownership.GET("/requests", ownershipHandler.Requests)
	ownership.GET("/candidates", ownershipHandler.Candidates)

	// Listings
	listings := api.Group("/listings")
	listings.GET("", listingHandler.Browse)
	listings.POST("", middleware.AuthRequired(), listingHandler.Create)
	listings.GET("/my", middleware.AuthRequired(), listingHandler.Mine)

	// Donations
	donations := api.Group("/donations")
	donations.GET("", donationHandler.Browse)
	donations.POST("", middleware.AuthRequired(), donationHandler.Create)
	donations.GET("/my", middleware.AuthRequired(), donationHandler.Mine)

	// Payments & rewards
	payments := api.Group("/payments", middleware.AuthRequired())
	payments.GET("/method", paymentHandler.Get)
	payments.PUT("/method", paymentHandler.Save)
	payments.GET("/rewards", paymentHandler.Rewards)

	// Help & support
	queries := api.Group("/queries", middleware.AuthRequired())
	queries.POST("", queryHandler.Submit)

	// Admin
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleAllowed("admin"))
	admin.GET("/users", authHandler.ListUsers)
	admin.GET("/queries", queryHandler.List)
	admin.PATCH("/listings/:id/status", listingHandler.Moderate)
}
