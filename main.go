package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/huanchong-99/Go-Home/api"
	"github.com/huanchong-99/Go-Home/config"
	"github.com/huanchong-99/Go-Home/pkg/cache"
	"github.com/huanchong-99/Go-Home/pkg/logger"
	"github.com/huanchong-99/Go-Home/planner"
	"github.com/huanchong-99/Go-Home/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})
	logger.Info("启动行程规划服务", "environment", cfg.Environment, "port", cfg.Port)

	ctx := context.Background()

	providers, err := provider.NewManagerFromConfig(ctx, cfg.ProviderConfig)
	if err != nil {
		logger.Fatal(err, "初始化数据提供方失败")
	}
	defer providers.Close()
	logger.Info("数据提供方就绪",
		"flight", providers.FlightRunning(), "train", providers.TrainRunning())

	var store cache.Cache
	if cfg.RedisConfig.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Host + ":" + cfg.RedisConfig.Port,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis 不可用，站点代码缓存仅保留在内存", "error", err)
		} else {
			store = cache.NewRedis(client, cfg.RedisConfig.Prefix)
			logger.Info("站点代码缓存使用 Redis", "prefix", cfg.RedisConfig.Prefix)
		}
	}

	engine := planner.NewEngine(providers, store, cfg.SchedulerConfig, cfg.EngineConfig)

	// Warm the flight provider before traffic arrives; failures are
	// retried lazily on the first plan.
	go engine.Warmup().Run(ctx)
	if err := engine.Warmup().StartKeeper(cfg.SchedulerConfig.WarmupSchedule); err != nil {
		logger.Warn("预热定时任务启动失败", "error", err)
	}
	defer engine.Warmup().StopKeeper()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.RegisterRoutes(router, engine, providers)

	srv := &http.Server{
		Addr:    cfg.HTTPBindAddr + ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP 服务监听中", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err, "HTTP 服务异常退出")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("收到退出信号，正在关闭")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "HTTP 服务关闭失败")
	}
	logger.Info("服务已退出")
}
