package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MeckMan2025/Meckman-Finance/internal/app/di"
	"github.com/MeckMan2025/Meckman-Finance/internal/app/router"
	lastsearchhandler "github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/transport/handler"
	lastsearchusecase "github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/usecase"
	quotehandler "github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/transport/handler"
	quoteusecase "github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/usecase"
	symbollistadapters "github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/adapters"
	symbollisthandler "github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/transport/handler"
	symbollistusecase "github.com/MeckMan2025/Meckman-Finance/internal/feature/symbollist/usecase"
	infraredis "github.com/MeckMan2025/Meckman-Finance/internal/platform/redis"
)

func main() {
	// db（最終検索銘柄のフォールバック保存先）
	dbPath := os.Getenv("MECKMAN_DB_PATH")
	if dbPath == "" {
		dbPath = "meckman.db"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to SQLite for last search.")
		rdb = nil
	} else {
		rdb = tmp
		if rdb != nil {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	market := di.NewMarket()
	symbolRepo := symbollistadapters.NewSymbolRepository()
	lastRepo, err := di.NewLastSearchRepository(rdb, db)
	if err != nil {
		log.Fatal("failed to initialize last search store:", err)
	}

	// Usecase
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)
	lastUC := lastsearchusecase.NewLastSearchUsecase(lastRepo)
	searchUC := quoteusecase.NewSearchController(market, symbolUC, lastUC, quoteusecase.NewRandomApproximator())

	// Handler
	quoteH := quotehandler.NewQuoteHandler(searchUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)
	lastH := lastsearchhandler.NewLastSearchHandler(lastUC)

	// ルータ生成
	router := router.NewRouter(quoteH, symbolH, lastH)

	// APIキーチェック（開発中の注意喚起）
	if os.Getenv("FMP_API_KEY") == "" {
		log.Println("[WARN] FMP_API_KEY is not set. Provider requests will be rejected.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
