package config

import (
	"os"

	"github.com/velesk/theatre-booking/internal/util"
)

type Config struct {
	DatabaseDSN string
	Addr        string
	CacheURL    string
	MQURL       string
	JWTSecret   string
	UploadDir   string
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	cfg := &Config{
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		Addr:        os.Getenv("ADDR"),
		CacheURL:    os.Getenv("CACHE_URL"),
		MQURL:       os.Getenv("RABBIT_MQ_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":4000"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads/images"
	}
	return cfg, nil
}
