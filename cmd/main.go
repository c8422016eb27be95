package main

import (
	"fmt"
	"log"
	"os"

	"ponto/backend/foundation/web"
	"ponto/backend/internal/auth"
	"ponto/backend/internal/commands"
	"ponto/backend/internal/pkg/config"
	"ponto/backend/internal/pkg/repository/postgresql"
	"ponto/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg struct {
		Web struct {
			Port string `conf:"default::8080"`
		}
		Args       conf.Args
		ConfigPath string `conf:"default:config.yaml"`
		Debug      bool   `conf:"default:false"`
	}

	if err := conf.Parse(os.Args[1:], "PONTO", &cfg); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("PONTO", &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	yamlConfig, err := config.NewConfig(cfg.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "reading yaml config")
	}

	postgresDB := postgresql.New(postgresql.Config{
		Username:   yamlConfig.DBUsername,
		Password:   yamlConfig.DBPassword,
		Host:       yamlConfig.DBHost,
		Port:       yamlConfig.DBPort,
		Name:       yamlConfig.DBName,
		DisableTLS: yamlConfig.DisableTLS,
		Debug:      cfg.Debug,
	})
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     yamlConfig.RedisAddr,
		Password: yamlConfig.RedisPassword,
	})
	defer redisDB.Close()

	tokenAuth := auth.New(yamlConfig.JWTKey)

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, cfg.Web.Port, tokenAuth, yamlConfig.JWTKey)

	return r.Init()
}
