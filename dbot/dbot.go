package dbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andersfylling/disgord"
	"github.com/charmbracelet/log"

	"github.com/pdenney/minecloud/config"
	"github.com/pdenney/minecloud/defs"
	"github.com/pdenney/minecloud/utils"
)

func parseOp(message string, mcs []defs.MessageCommand) (*defs.ServerRequestOp, error) {
	for _, mc := range mcs {
		if message == mc.Command || strings.HasPrefix(message, mc.Command+" ") {
			argString := message[len(mc.Command):]

			compiledArgs, err := utils.ParseArgString(argString, mc.FlagArgs, mc.AllowUnnamedArg)
			if err != nil {
				var flagErr *utils.InvalidFlagError
				if errors.As(err, &flagErr) {
					return nil, fmt.Errorf("flag %q is not allowed for command %q", flagErr.Found, mc.Command)
				}
				return nil, err
			}

			return &defs.ServerRequestOp{Code: mc.RequestCode, Args: compiledArgs}, nil
		}
	}
	return nil, fmt.Errorf("command %q is not recognized", message)
}

// MakeBotManager starts a discord bot that listens to incoming messages, and sends ServerRequestOps when a valid
// command is requested. it also sends messages back to the discord server based on the messages provided by the
// discordResponses channel
func MakeBotManager(cfg *config.Config, serverRequests chan<- *defs.ServerRequestOp, discordResponses chan string) {
	bg := context.Background()
	client := disgord.New(disgord.Config{
		BotToken: cfg.DiscordToken,
	})
	channelID := disgord.Snowflake(cfg.ChannelID)

	defer client.StayConnectedUntilInterrupted(bg)

	handleMessage := func(session disgord.Session, evt *disgord.MessageCreate) {
		msg := evt.Message
		if msg.Author == nil || msg.Author.Bot {
			return
		}
		if cfg.ChannelID != 0 && msg.ChannelID != disgord.Snowflake(cfg.ChannelID) {
			// commands are only accepted from the configured channel
			return
		}
		if channelID == 0 {
			// NOTE: only reliable when the bot is on a single discord server;
			// set CHANNEL_ID in the config otherwise
			channelID = msg.ChannelID
		}
		if !strings.HasPrefix(msg.Content, cfg.Prefix) {
			return
		}

		cmd := strings.TrimSpace(msg.Content[len(cfg.Prefix):])
		op, err := parseOp(cmd, defs.Commands)
		if err != nil {
			// unrecognized text gets no reply
			log.Debug("Ignoring message", "content", cmd, "reason", err)
			return
		}
		serverRequests <- op
	}

	client.On(disgord.EvtMessageCreate, handleMessage)

	log.Info("Bot is listening")

	go func() {
		for {
			discordMsg := <-discordResponses
			client.CreateMessage(bg, channelID, &disgord.CreateMessageParams{
				Content: discordMsg,
			})
		}
	}()
}
