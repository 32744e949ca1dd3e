package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// ErrTemplateCreated signals that no config file existed yet, so a blank
// template was written for the operator to fill in.
var ErrTemplateCreated = errors.New("config template created")

// Config is the immutable startup configuration for the bot. AWS credentials
// may be left blank, in which case the SDK's default credential chain is used.
type Config struct {
	DiscordToken    string
	InstanceID      string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	ServerHost      string
	ChannelID       uint64
	Prefix          string
}

const defaultPrefix = "!mc "

// Load reads a flat key=value config file. If the file does not exist, a
// template is created and ErrTemplateCreated is returned.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeTemplate(path); err != nil {
			return nil, fmt.Errorf("failed to write config template: %w", err)
		}
		log.Info("Wrote a blank config file. Fill it in and restart.", "path", path)
		return nil, ErrTemplateCreated
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{
		DiscordToken:    values["DISCORD_TOKEN"],
		InstanceID:      values["INSTANCE_ID"],
		Region:          values["AWS_REGION"],
		AccessKeyID:     values["AWS_ACCESS_KEY_ID"],
		SecretAccessKey: values["AWS_SECRET_ACCESS_KEY"],
		ServerHost:      values["SERVER_HOST"],
		Prefix:          values["COMMAND_PREFIX"],
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if raw := values["CHANNEL_ID"]; raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CHANNEL_ID %q is not a valid channel id: %w", raw, err)
		}
		cfg.ChannelID = id
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN is missing from config")
	}
	if cfg.InstanceID == "" {
		return nil, errors.New("INSTANCE_ID is missing from config")
	}
	if cfg.Region == "" {
		return nil, errors.New("AWS_REGION is missing from config")
	}

	return cfg, nil
}

func writeTemplate(path string) error {
	return godotenv.Write(map[string]string{
		"DISCORD_TOKEN":         "",
		"INSTANCE_ID":           "i-xxxxxxxxxxxxxxxxx",
		"AWS_REGION":            "us-east-2",
		"AWS_ACCESS_KEY_ID":     "",
		"AWS_SECRET_ACCESS_KEY": "",
		"SERVER_HOST":           "",
		"CHANNEL_ID":            "",
		"COMMAND_PREFIX":        defaultPrefix,
	}, path)
}
