package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	RedisAddr         string
	RedisPassword     string
	TokenSecret       string
	PublicBaseURL     string
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	MailFrom          string
	MailWorkers       int
	MailQueueSize     int
	MailSendTimeout   time.Duration
	CartTTL           time.Duration
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultRedisAddr       = "localhost:6379"
	defaultTokenSecret     = "change-me-in-production"
	defaultPublicBaseURL   = "http://localhost:8080"
	defaultRazorpayBaseURL = "https://api.razorpay.com"
	defaultSMTPPort        = 587
	defaultMailFrom        = "no-reply@scentshop.local"
	defaultMailWorkers     = 2
	defaultMailQueueSize   = 64
	defaultMailSendTimeout = 10 * time.Second
	defaultCartTTL         = 30 * 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		RedisAddr:         getString(lookup, "REDIS_ADDR", defaultRedisAddr),
		RedisPassword:     getString(lookup, "REDIS_PASSWORD", ""),
		TokenSecret:       getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		PublicBaseURL:     getString(lookup, "PUBLIC_BASE_URL", defaultPublicBaseURL),
		RazorpayKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		RazorpayBaseURL:   getString(lookup, "RAZORPAY_BASE_URL", defaultRazorpayBaseURL),
		SMTPHost:          getString(lookup, "SMTP_HOST", ""),
		SMTPPort:          getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:      getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:      getString(lookup, "SMTP_PASSWORD", ""),
		MailFrom:          getString(lookup, "MAIL_FROM", defaultMailFrom),
		MailWorkers:       getInt(lookup, "MAIL_WORKERS", defaultMailWorkers),
		MailQueueSize:     getInt(lookup, "MAIL_QUEUE_SIZE", defaultMailQueueSize),
		MailSendTimeout:   getDuration(lookup, "MAIL_SEND_TIMEOUT", defaultMailSendTimeout),
		CartTTL:           getDuration(lookup, "CART_TTL", defaultCartTTL),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("scentshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		mailTimeoutStr     = cfg.MailSendTimeout.String()
		cartTTLStr         = cfg.CartTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the cart store")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", cfg.PublicBaseURL, "Public base URL used in email links")
	fs.StringVar(&cfg.RazorpayKeyID, "razorpay-key", cfg.RazorpayKeyID, "Razorpay API key id")
	fs.StringVar(&cfg.RazorpayBaseURL, "razorpay-url", cfg.RazorpayBaseURL, "Razorpay API base URL")
	fs.IntVar(&cfg.MailWorkers, "mail-workers", cfg.MailWorkers, "Number of concurrent mail workers")
	fs.IntVar(&cfg.MailQueueSize, "mail-queue", cfg.MailQueueSize, "Mail dispatch queue capacity")
	fs.StringVar(&mailTimeoutStr, "mail-timeout", mailTimeoutStr, "Per-message mail send timeout")
	fs.StringVar(&cartTTLStr, "cart-ttl", cartTTLStr, "Cart expiry in the cart store")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.MailSendTimeout, err = time.ParseDuration(mailTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid mail timeout: %w", err)
	}

	if cfg.CartTTL, err = time.ParseDuration(cartTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cart ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if secretFile, ok := lookup("RAZORPAY_KEY_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read razorpay secret file: %w", err)
		}
		cfg.RazorpayKeySecret = string(content)
	}

	if cfg.MailWorkers <= 0 {
		cfg.MailWorkers = defaultMailWorkers
	}

	if cfg.MailQueueSize <= 0 {
		cfg.MailQueueSize = defaultMailQueueSize
	}

	if cfg.MailSendTimeout <= 0 {
		cfg.MailSendTimeout = defaultMailSendTimeout
	}

	if cfg.CartTTL <= 0 {
		cfg.CartTTL = defaultCartTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis address must be provided")
	}

	if cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("razorpay key secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
