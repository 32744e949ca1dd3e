package instance

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/charmbracelet/log"

	"github.com/pdenney/minecloud/defs"
)

type serverAction func(ctx context.Context, m *manager, args map[string]string) string

var startServerRequestAction = func(ctx context.Context, m *manager, args map[string]string) string {
	_, err := m.api.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{m.cfg.InstanceID},
	})
	if err != nil {
		log.Error("Failed to start instance", "instance", m.cfg.InstanceID, "error", err)
		return "ERROR: could not start the server. try again in a bit"
	}
	return "Starting the server..."
}

var stopServerRequestAction = func(ctx context.Context, m *manager, args map[string]string) string {
	_, err := m.api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{m.cfg.InstanceID},
	})
	if err != nil {
		log.Error("Failed to stop instance", "instance", m.cfg.InstanceID, "error", err)
		return "ERROR: could not stop the server. try again in a bit"
	}
	return "Stopping the server..."
}

var statusServerRequestAction = func(ctx context.Context, m *manager, args map[string]string) string {
	status, address, err := describeInstance(ctx, m.api, m.cfg.InstanceID)
	if err != nil {
		log.Error("Failed to describe instance", "instance", m.cfg.InstanceID, "error", err)
		return "ERROR: could not check on the server. try again in a bit"
	}

	switch status {
	case StatusPending:
		return "Server is pending."
	case StatusStopping:
		return "Server is stopping."
	case StatusStopped:
		return "Server is stopped."
	case StatusRunning:
		msg := "Server is running."
		if address != "" {
			msg = "Server is running at " + address + "."
		}
		host := m.cfg.ServerHost
		if host == "" {
			host = address
		}
		if m.pinger != nil && host != "" {
			online, max, err := m.pinger.Ping(host)
			if err != nil {
				msg += " Minecraft isn't responding yet - give it a minute."
			} else {
				msg += fmt.Sprintf(" %d/%d players online.", online, max)
			}
		}
		return msg
	default:
		return "Server state is unknown."
	}
}

var addressServerRequestAction = func(ctx context.Context, m *manager, args map[string]string) string {
	host := m.cfg.ServerHost
	if host == "" {
		_, address, err := describeInstance(ctx, m.api, m.cfg.InstanceID)
		if err != nil {
			log.Error("Failed to describe instance", "instance", m.cfg.InstanceID, "error", err)
			return "ERROR: could not look up the server address. try again in a bit"
		}
		if address == "" {
			return "Server has no public address right now. it's probably not running"
		}
		host = address
	}
	return "Server listening from " + host
}

var helpServerRequestAction = func(ctx context.Context, m *manager, args map[string]string) string {
	helpText := fmt.Sprintf("Issue a command by messaging the bot with %q followed by your command\ne.g. %sstatus\n\nCOMMANDS",
		m.cfg.Prefix, m.cfg.Prefix)

	for _, c := range defs.Commands {
		helpText += "\n- " + c.HelpText
	}
	return helpText
}

var serverRequestActions = map[defs.ServerRequestOpCode]serverAction{
	defs.Start:   startServerRequestAction,
	defs.Stop:    stopServerRequestAction,
	defs.Status:  statusServerRequestAction,
	defs.Address: addressServerRequestAction,
	defs.Help:    helpServerRequestAction,
}
