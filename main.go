package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/pdenney/minecloud/config"
	"github.com/pdenney/minecloud/dbot"
	"github.com/pdenney/minecloud/defs"
	"github.com/pdenney/minecloud/instance"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logging")
	configPath := flag.String("config", "minecloud.env", "path to the config file")
	flag.Parse()

	log.SetTimeFormat("[2006-01-02 15:04:05]")
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, config.ErrTemplateCreated) {
			os.Exit(0)
		}
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()
	api, err := instance.NewEC2Client(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to build EC2 client", "error", err)
	}

	serverRequests := make(chan *defs.ServerRequestOp)
	discordResponses := make(chan string)

	instance.MakeInstanceManager(ctx, cfg, api, instance.NewPinger(), serverRequests, discordResponses)
	dbot.MakeBotManager(cfg, serverRequests, discordResponses)
}
