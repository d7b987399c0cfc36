package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all client settings. The backend base URL is the single
// deploy-time constant; everything else has sane defaults.
type Config struct {
	AppName  string
	Env      string // DEV (default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	Build    string

	// backend
	BaseURL        string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration

	// local storage; defaults to <UserConfigDir>/shule when empty
	DataDir string

	// dev server
	SecretKey          string
	ServerAddr         string
	JWTExpirationDelta time.Duration

	RollbarToken string
}

var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Shule")
	v.SetDefault("build", "dev")
	v.SetDefault("baseURL", "http://localhost:8000/v1")
	v.SetDefault("requestTimeout", 15*time.Second)
	v.SetDefault("uploadTimeout", 30*time.Second)
	v.SetDefault("maxRetries", 3)
	v.SetDefault("retryBackoff", 250*time.Millisecond)
	v.SetDefault("dataDir", "")
	v.SetDefault("secretKey", "w3+2uzcil#y[ib)m1+ev_p$n=u4fa5pxp$2externbqmu&0+!5")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		AppName:            v.GetString("appName"),
		Env:                env,
		Debug:              v.GetBool("debug"),
		TestMode:           v.GetBool("testMode"),
		Build:              v.GetString("build"),
		BaseURL:            v.GetString("baseURL"),
		RequestTimeout:     v.GetDuration("requestTimeout"),
		UploadTimeout:      v.GetDuration("uploadTimeout"),
		MaxRetries:         v.GetInt("maxRetries"),
		RetryBackoff:       v.GetDuration("retryBackoff"),
		DataDir:            v.GetString("dataDir"),
		SecretKey:          v.GetString("secretKey"),
		ServerAddr:         v.GetString("serverAddr"),
		JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		RollbarToken:       v.GetString("rollbarToken"),
	}
}
