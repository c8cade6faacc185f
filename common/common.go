package common

import (
	go_context "context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
)

// Configuration struct for server, Stripe and optional Redis settings
type Config_T struct {
	BaseURL              string
	StripeSecretKey      string
	StripePublishableKey string
	Currency             string
	RedisURL             string
	Port                 string
}

var (
	Config *Config_T
	Rdb    *redis.Client
	Ctx    = go_context.Background()
)

// Load reads the environment into Config and connects the optional Redis
// cache. Called once from main; tests assign Config directly instead.
func Load() {
	godotenv.Load()
	Config = &Config_T{
		BaseURL:              os.Getenv("BASE_URL"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		Currency:             os.Getenv("CURRENCY"),
		RedisURL:             os.Getenv("REDIS_URL"),
		Port:                 os.Getenv("PORT"),
	}

	if Config.StripeSecretKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is not set")
	}

	if Config.BaseURL == "" {
		log.Fatal("BASE_URL is not set")
	}

	if Config.Currency == "" {
		Config.Currency = "usd"
	}

	if Config.Port == "" {
		Config.Port = "8080"
	}

	stripe.Key = Config.StripeSecretKey

	if Config.RedisURL != "" {
		redisConfig, err := redis.ParseURL(Config.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		// Connections to render key value store usually takes 3-4 seconds to connect
		redisConfig.ReadTimeout = 6 * time.Second

		Rdb = redis.NewClient(redisConfig)

		log.Printf("Connected to Redis at %s", Config.RedisURL)

		_, err = Rdb.Ping(Ctx).Result()
		if err != nil {
			log.Fatal(err)
		}
	}
}
