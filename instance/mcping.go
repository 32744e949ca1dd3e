package instance

import (
	"github.com/xrjr/mcutils/pkg/ping"
)

const defaultMinecraftPort = 25565

// Pinger checks whether the Minecraft process itself answers a list ping.
// The instance being "running" only means the VM booted; the server process
// may still be coming up behind it.
type Pinger interface {
	Ping(host string) (online int, max int, err error)
}

type mcPinger struct{}

// NewPinger returns a Pinger backed by the Minecraft server list ping protocol.
func NewPinger() Pinger {
	return mcPinger{}
}

func (mcPinger) Ping(host string) (int, int, error) {
	properties, _, err := ping.Ping(host, defaultMinecraftPort)
	if err != nil {
		return 0, 0, err
	}
	online, max := playerCounts(properties)
	return online, max, nil
}

// playerCounts digs the player counts out of the ping response. The response
// is decoded JSON, so numbers come back as float64.
func playerCounts(properties ping.JSON) (int, int) {
	players, ok := properties["players"].(map[string]interface{})
	if !ok {
		return 0, 0
	}
	online, _ := players["online"].(float64)
	max, _ := players["max"].(float64)
	return int(online), int(max)
}
