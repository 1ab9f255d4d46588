package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aishwaryaDel/tesa-ai-template/config"
	"github.com/aishwaryaDel/tesa-ai-template/internal/bootstrap"
	"github.com/aishwaryaDel/tesa-ai-template/internal/events"
	"github.com/aishwaryaDel/tesa-ai-template/internal/storage/postgres"
	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/cache"
	cronjob "github.com/aishwaryaDel/tesa-ai-template/internal/usecases/cron"
	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/repository"
	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/service"
)

const serviceName = "use-case-hub-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	log.Printf("[api] connected to postgres host=%s db=%s", cfg.Database.Host, cfg.Database.Name)

	bus := events.NewBus()
	repo := repository.NewUseCaseRepository(db)

	var recordCache service.Cache
	if cfg.Redis.CacheEnabled {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("redis: %v", err)
		}
		cancel()

		uc := cache.New(client, cfg.Redis.CacheTTL)
		uc.RegisterInvalidation(bus)
		recordCache = uc
		log.Printf("[api] record cache enabled addr=%s ttl=%s", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	}

	svc := service.NewUseCaseService(repo, bus, recordCache)

	if cfg.Jobs.DigestEnabled {
		digest := cronjob.NewDigest(repo)
		digest.Start()
		defer digest.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          db,
		UseCases:    svc,
	})

	log.Printf("[api] listening port=%s env=%s", cfg.Server.Port, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
