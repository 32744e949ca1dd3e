package instance

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/pdenney/minecloud/config"
	"github.com/pdenney/minecloud/defs"
)

type manager struct {
	cfg    *config.Config
	api    EC2API
	pinger Pinger
}

// MakeInstanceManager listens to the serverRequests channel and performs ops
// against the EC2 instance, sending string replies to the discordResponses
// channel. Each request is handled to completion before the next is read, so
// handlers never overlap and no state is shared between them.
func MakeInstanceManager(ctx context.Context, cfg *config.Config, api EC2API, pinger Pinger, serverRequests <-chan *defs.ServerRequestOp, discordResponses chan<- string) {
	m := &manager{cfg: cfg, api: api, pinger: pinger}

	go func() {
		for {
			serverRequest := <-serverRequests
			action, ok := serverRequestActions[serverRequest.Code]
			if !ok {
				log.Debug("Unknown op requested", "code", serverRequest.Code)
				continue
			}
			responseMsg := action(ctx, m, serverRequest.Args)
			log.Debug("Handled request", "code", serverRequest.Code, "reply", responseMsg)
			discordResponses <- responseMsg
		}
	}()
}
