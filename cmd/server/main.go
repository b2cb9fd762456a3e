package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/carteiralabs/carteira/docs"
	"github.com/carteiralabs/carteira/internal/db"
	"github.com/carteiralabs/carteira/internal/handlers"
	"github.com/carteiralabs/carteira/internal/logger"
	"github.com/carteiralabs/carteira/internal/repositories"
	"github.com/carteiralabs/carteira/internal/services"
)

// @title Carteira API
// @version 0.1.0
// @description Portfolio tracking backend with valuation, market-data caching and agent action entry points.
// @BasePath /api
func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zlog.Fatal("Database health check failed", zap.Error(err))
	}
	zlog.Info("Database connection established")

	// Repositories
	assetRepo := repositories.NewAssetRepository(database)
	transactionRepo := repositories.NewTransactionRepository(database)
	dividendRepo := repositories.NewDividendRepository(database)
	agentActionRepo := repositories.NewAgentActionRepository(database)

	// Market data: Yahoo quote feed behind a TTL cache with fallback symbol
	// resolution for the default regional market.
	provider := services.NewYahooQuoteProvider(os.Getenv("QUOTE_BASE_URL"))
	resolver := services.NewSuffixResolver(os.Getenv("MARKET_SUFFIX"))
	priceCache := services.NewPriceCache(provider, resolver, priceTTLFromEnv(), zlog)

	// Services
	assetService := services.NewAssetService(assetRepo)
	transactionService := services.NewTransactionService(assetRepo, transactionRepo)
	dividendService := services.NewDividendService(assetRepo, dividendRepo)
	analysisService := services.NewAnalysisService(assetRepo, transactionRepo, dividendRepo, priceCache, zlog)
	agentService := services.NewAgentService(assetRepo, transactionRepo, agentActionRepo, analysisService, priceCache, zlog)

	// Handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dividendHandler := handlers.NewDividendHandler(dividendService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	priceHandler := handlers.NewPriceHandler(priceCache)
	agentHandler := handlers.NewAgentHandler(agentService)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "carteira-backend",
		})
	})

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/assets", assetHandler.HandleAssets)
	api.HandleFunc("/assets/{ticker}", assetHandler.HandleAsset)
	api.HandleFunc("/assets/{ticker}/transactions", transactionHandler.HandleAssetTransactions)
	api.HandleFunc("/assets/{ticker}/dividends", dividendHandler.HandleAssetDividends)
	api.HandleFunc("/assets/{ticker}/analysis", analysisHandler.HandleAssetAnalysis)
	api.HandleFunc("/transactions/{id}", transactionHandler.HandleTransaction)
	api.HandleFunc("/dividends/{id}", dividendHandler.HandleDividend)
	api.HandleFunc("/portfolio/analysis", analysisHandler.HandlePortfolioAnalysis)
	api.HandleFunc("/prices/current", priceHandler.HandleCurrentPrice)
	api.HandleFunc("/agent/actions", agentHandler.HandleActions)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, req)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	zlog.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(r)); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}

func priceTTLFromEnv() time.Duration {
	if v := os.Getenv("PRICE_CACHE_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return services.DefaultPriceTTL
}
