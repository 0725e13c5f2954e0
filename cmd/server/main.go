package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/joho/godotenv"
	"github.com/kgrady/raffled/internal/common/clock"
	commonUUID "github.com/kgrady/raffled/internal/common/uuid"
	"github.com/kgrady/raffled/internal/handlers/api"
	"github.com/kgrady/raffled/internal/keeper"
	"github.com/kgrady/raffled/internal/oracle"
	payoutRepo "github.com/kgrady/raffled/internal/repositories/payout"
	raffleRepo "github.com/kgrady/raffled/internal/repositories/raffle"
	"github.com/kgrady/raffled/internal/services/notify"
	raffleService "github.com/kgrady/raffled/internal/services/raffle"
	"github.com/redis/go-redis/v9"
)

func main() {
	defer logger.Init("raffled", true, false, io.Discard).Close()

	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file loaded: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	raffles, err := raffleRepo.NewRedis(&raffleRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatalf("Failed to create raffle repository: %v", err)
	}

	payouts, err := payoutRepo.NewRedis(&payoutRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatalf("Failed to create payout repository: %v", err)
	}

	// Initialize the randomness oracle client
	oracleClient, err := oracle.NewHTTP(&oracle.Config{
		BaseURL:              mustGetEnv("ORACLE_BASE_URL"),
		KeyHash:              mustGetEnv("ORACLE_KEY_HASH"),
		SubscriptionID:       mustGetEnv("ORACLE_SUBSCRIPTION_ID"),
		RequestConfirmations: uint16(getEnvInt("ORACLE_REQUEST_CONFIRMATIONS", 3)),
		CallbackGasLimit:     uint32(getEnvInt("ORACLE_CALLBACK_GAS_LIMIT", 100000)),
		CallbackURL:          mustGetEnv("ORACLE_CALLBACK_URL"),
	})
	if err != nil {
		logger.Fatalf("Failed to create oracle client: %v", err)
	}

	// Initialize notifiers; Discord announcements are optional
	var notifier notify.Notifier = notify.NewLog()

	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken != "" {
		discordNotifier, err := notify.NewDiscord(&notify.DiscordConfig{
			Token:     discordToken,
			ChannelID: mustGetEnv("DISCORD_CHANNEL_ID"),
		})
		if err != nil {
			logger.Fatalf("Failed to create Discord notifier: %v", err)
		}
		defer discordNotifier.Close()

		notifier = notify.NewMulti(notify.NewLog(), discordNotifier)
	}

	// Initialize the raffle service
	svc, err := raffleService.New(ctx, &raffleService.Config{
		RaffleID:    getEnv("RAFFLE_ID", "default"),
		EntranceFee: getEnvInt("ENTRANCE_FEE", 100),
		Interval:    getEnvDuration("RAFFLE_INTERVAL", time.Hour),
		RaffleRepo:  raffles,
		PayoutRepo:  payouts,
		Oracle:      oracleClient,
		Notifier:    notifier,
		Clock:       &clock.DefaultClock{},
		UUID:        commonUUID.New(),
	})
	if err != nil {
		logger.Fatalf("Failed to create raffle service: %v", err)
	}

	// Initialize the HTTP handler
	handler, err := api.New(&api.Config{
		RaffleService: svc,
		PayoutRepo:    payouts,
	})
	if err != nil {
		logger.Fatalf("Failed to create HTTP handler: %v", err)
	}

	router := gin.Default()
	handler.RegisterRoutes(router)

	// Start the keeper loop that drives the draws
	k, err := keeper.New(&keeper.Config{
		RaffleService: svc,
		PollInterval:  getEnvDuration("KEEPER_POLL_INTERVAL", 30*time.Second),
	})
	if err != nil {
		logger.Fatalf("Failed to create keeper: %v", err)
	}
	k.Start()

	// Serve until interrupted
	addr := getEnv("LISTEN_ADDR", ":8080")
	go func() {
		logger.Infof("Server starting on %s", addr)
		if err := router.Run(addr); err != nil {
			logger.Fatalf("Failed to run server: %v", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	k.Stop()
	logger.Info("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// mustGetEnv gets a required environment variable or exits
func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Fatalf("%s environment variable is required", key)
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logger.Fatalf("%s must be an integer: %v", key, err)
	}
	return parsed
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		logger.Fatalf("%s must be a duration: %v", key, err)
	}
	return parsed
}
