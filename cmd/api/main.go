package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"souqly/internal/adapter/api"
	"souqly/internal/adapter/api/handler"
	apimiddleware "souqly/internal/adapter/api/middleware"
	"souqly/internal/adapter/api/router"
	"souqly/internal/adapter/repository"
	"souqly/internal/domain/entity"
	"souqly/internal/domain/service"
	"souqly/internal/infrastructure/cache"
	"souqly/internal/infrastructure/firebase"
	"souqly/internal/infrastructure/imagehost"
	"souqly/internal/infrastructure/storage"
	"souqly/internal/infrastructure/websocket"
	"souqly/internal/usecase"
	"souqly/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	switch {
	case serviceAccountJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	case serviceAccountPath != "":
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	// Cloudinary serves listing images when configured; otherwise uploads
	// fall back to the Cloud Storage bucket.
	var uploader service.ImageUploadService
	var deleter service.ImageDeleter
	if cfg.CloudinaryCloudName != "" {
		cloudinaryClient, err := imagehost.NewCloudinaryClient(
			cfg.CloudinaryCloudName,
			cfg.CloudinaryApiKey,
			cfg.CloudinaryApiSecret,
			cfg.CloudinaryFolder,
		)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		uploader = cloudinaryClient
		deleter = cloudinaryClient
	} else {
		uploader = storageClient
		deleter = storageClient
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient, listingRepo)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	feedCache := cache.NewFeedCache(func(l *entity.Listing) string { return l.ID })

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, favoriteRepo, userRepo, categoryRepo, feedCache, cfg.FeedPageSize)
	cartUseCase := usecase.NewCartUseCase(cartRepo, listingRepo, cfg.ShippingFee)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, userRepo, cfg.ShippingFee)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, listingRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, listingRepo, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listingRepo, userRepo)
	uploadUseCase := usecase.NewUploadUseCase(uploader, deleter, cfg.UploadParallel)

	handler.Setup(
		authUseCase,
		userUseCase,
		listingUseCase,
		cartUseCase,
		orderUseCase,
		favoriteUseCase,
		chatUseCase,
		reviewUseCase,
		uploadUseCase,
	)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	handler.SetupWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
