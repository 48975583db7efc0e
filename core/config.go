package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string
		AppName  string
		Build    string

		Server   ServerConfig
		Database DatabaseConfig
		Rating   RatingConfig
		Schedule ScheduleConfig

		RollbarToken string
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine     string // "postgres" | "sqlite"
		Name       string
		User       string
		Password   string
		Host       string
		Port       string
		DisableTLS bool
	}

	RatingConfig struct {
		URL      string
		SchoolID string
		Timeout  time.Duration
	}

	ScheduleConfig struct {
		DayStartHour   int
		SlotMinutes    int
		RequireAllDays bool
	}
)

func (c DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// NewConfig loads configuration from the environment with sane defaults.
// An optional `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Spartan Advisor")
	conf.SetDefault("build", "dev")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.addr", ":8000")
	conf.SetDefault("server.debugAddr", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("database.engine", "sqlite")
	conf.SetDefault("database.name", "advisor.db")
	conf.SetDefault("database.user", "")
	conf.SetDefault("database.password", "")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", "5432")
	conf.SetDefault("database.disableTLS", true)
	conf.SetDefault("rating.url", "https://www.ratemyprofessors.com/graphql")
	conf.SetDefault("rating.schoolID", "U2Nob29sLTg4MQ==") // SJSU
	conf.SetDefault("rating.timeout", 10*time.Second)
	conf.SetDefault("schedule.dayStartHour", 7)
	conf.SetDefault("schedule.slotMinutes", 15)
	conf.SetDefault("schedule.requireAllDays", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:    conf.GetBool("debug"),
		TestMode: testMode,
		Env:      env,
		AppName:  conf.GetString("appName"),
		Build:    conf.GetString("build"),
		Server: ServerConfig{
			Host:            conf.GetString("server.host"),
			Addr:            conf.GetString("server.addr"),
			DebugAddr:       conf.GetString("server.debugAddr"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:     conf.GetString("database.engine"),
			Name:       conf.GetString("database.name"),
			User:       conf.GetString("database.user"),
			Password:   conf.GetString("database.password"),
			Host:       conf.GetString("database.host"),
			Port:       conf.GetString("database.port"),
			DisableTLS: conf.GetBool("database.disableTLS"),
		},
		Rating: RatingConfig{
			URL:      conf.GetString("rating.url"),
			SchoolID: conf.GetString("rating.schoolID"),
			Timeout:  conf.GetDuration("rating.timeout"),
		},
		Schedule: ScheduleConfig{
			DayStartHour:   conf.GetInt("schedule.dayStartHour"),
			SlotMinutes:    conf.GetInt("schedule.slotMinutes"),
			RequireAllDays: conf.GetBool("schedule.requireAllDays"),
		},
		RollbarToken: conf.GetString("rollbarToken"),
	}
}
