package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/infrastructure/devops"
	"rollcall.com/rollcall/web/handlers"
	"rollcall.com/rollcall/web/middlewares"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	ssmParam := flag.String("ssm-config", "", "load the config from this SSM parameter instead of a file")
	flag.Parse()

	var (
		cfg *core.Config
		err error
	)
	if *ssmParam != "" {
		cfg, err = devops.LoadConfigFromSSM(context.Background(), *ssmParam)
	} else {
		cfg, err = core.LoadConfig(*configPath)
	}
	if err != nil {
		log.Fatal(err)
	}

	store, err := core.NewStore(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handlers.Register(&r.RouterGroup, store)

	log.Printf("listening on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
