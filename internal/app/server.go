package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopadmin-service/internal/cache"
	"shopadmin-service/internal/config"
	"shopadmin-service/internal/db"
	catalogHandler "shopadmin-service/internal/handlers/catalog"
	dealHandler "shopadmin-service/internal/handlers/deal"
	displayHandler "shopadmin-service/internal/handlers/display"
	notifyH "shopadmin-service/internal/handlers/notification"
	orderHandler "shopadmin-service/internal/handlers/order"
	promoHandler "shopadmin-service/internal/handlers/promo"
	storefrontHandler "shopadmin-service/internal/handlers/storefront"
	"shopadmin-service/internal/middleware"
	"shopadmin-service/internal/pkg/clock"
	"shopadmin-service/internal/repository/postgres"
	catalogUsecase "shopadmin-service/internal/service/catalog"
	dealUsecase "shopadmin-service/internal/service/deal"
	displayUsecase "shopadmin-service/internal/service/display"
	notifyUsecase "shopadmin-service/internal/service/notification"
	orderUsecase "shopadmin-service/internal/service/order"
	promoUsecase "shopadmin-service/internal/service/promo"
)

type Server struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer(cfg *config.AppConfig, logger *zap.Logger) *Server {
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine, logger: logger}
}

// Start wires the repositories, services and handlers, then runs the HTTP
// server and the banner status sweeper until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()

	clk := clock.RealClock{}

	// ----- Repositories -----
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	sectionRepo := postgres.NewSectionRepository(pool)
	promoRepo := postgres.NewPromoRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	// ----- Caches -----
	feedCache := cache.NewFeedCache(redisClient, s.cfg.FeedCacheTTL)

	// ----- Services -----
	resolver := displayUsecase.NewSourceResolver(productRepo, categoryRepo, subcategoryRepo, dealRepo)

	categoryService := catalogUsecase.NewCategoryService(categoryRepo, subcategoryRepo, s.logger)
	productService := catalogUsecase.NewProductService(
		productRepo, categoryRepo, subcategoryRepo, dealRepo, feedCache, s.logger)
	dealService := dealUsecase.NewService(dealRepo, productService, s.logger)
	bannerService := displayUsecase.NewBannerService(bannerRepo, resolver, feedCache, clk, s.logger)
	sectionService := displayUsecase.NewSectionService(sectionRepo, resolver, feedCache, s.logger)
	feedService := displayUsecase.NewFeedService(
		bannerRepo, sectionRepo, productRepo, resolver, feedCache, clk, s.logger)
	promoService := promoUsecase.NewService(promoRepo, clk, s.logger)
	orderService := orderUsecase.NewService(
		orderRepo, productRepo, promoService, notificationRepo, clk, s.logger)
	notificationService := notifyUsecase.NewService(notificationRepo, s.logger)

	sweeper := displayUsecase.NewStatusSweeper(
		bannerRepo, feedCache, clk, s.cfg.StatusSweepInterval, s.logger)

	// ----- Handlers -----
	handlers := &Handlers{
		CategoryHandler:   catalogHandler.NewCategoryHandler(categoryService),
		ProductHandler:    catalogHandler.NewProductHandler(productService),
		DealHandler:       dealHandler.NewDealHandler(dealService),
		BannerHandler:     displayHandler.NewBannerHandler(bannerService, sweeper),
		SectionHandler:    displayHandler.NewSectionHandler(sectionService),
		PromoHandler:      promoHandler.NewPromoHandler(promoService),
		OrderHandler:      orderHandler.NewOrderHandler(orderService),
		NotifHandler:      notifyH.NewNotificationHandler(notificationService),
		StorefrontHandler: storefrontHandler.NewStorefrontHandler(feedService),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	SetupRouter(s.engine, s.logger, handlers)

	// ----- Run -----
	httpServer := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweeper.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
