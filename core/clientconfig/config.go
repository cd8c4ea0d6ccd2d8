package clientconfig

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	coreerrors "github.com/overair/overair/core/errors"
)

const DefaultPath = ".overair/client.yaml"

// Config is the update client's embedded configuration: where to fetch
// manifests and assets from, and which runtime the installed client exposes.
type Config struct {
	UpdateURL      string `yaml:"update_url"`
	AssetBaseURL   string `yaml:"asset_base_url"`
	ReleaseChannel string `yaml:"release_channel"`
	RuntimeVersion string `yaml:"runtime_version"`
	SDKVersion     string `yaml:"sdk_version"`
}

func Load(path string, allowMissing bool) (Config, error) {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return Config{}, fmt.Errorf("client config path is required")
	}

	// #nosec G304 -- config path is explicit local input from the embedding app.
	content, err := os.ReadFile(trimmedPath)
	if err != nil {
		if os.IsNotExist(err) && allowMissing {
			return Config{}, nil
		}
		return Config{}, coreerrors.Wrap(
			fmt.Errorf("read client config: %w", err),
			coreerrors.CategoryIOFailure,
			"config_read_failed",
			"check the config path and file permissions",
			true,
		)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return Config{}, nil
	}

	var configuration Config
	if err := yaml.Unmarshal(content, &configuration); err != nil {
		return Config{}, coreerrors.Wrap(
			fmt.Errorf("parse client config: %w", err),
			coreerrors.CategoryInvalidInput,
			"config_parse_failed",
			"fix the YAML syntax in the client config",
			false,
		)
	}
	configuration.normalize()
	if err := configuration.validate(); err != nil {
		return Config{}, err
	}
	return configuration, nil
}

func (configuration *Config) normalize() {
	configuration.UpdateURL = strings.TrimSpace(configuration.UpdateURL)
	configuration.AssetBaseURL = strings.TrimRight(strings.TrimSpace(configuration.AssetBaseURL), "/")
	configuration.ReleaseChannel = strings.TrimSpace(configuration.ReleaseChannel)
	configuration.RuntimeVersion = strings.TrimSpace(configuration.RuntimeVersion)
	configuration.SDKVersion = strings.TrimSpace(configuration.SDKVersion)
}

func (configuration *Config) validate() error {
	for name, value := range map[string]string{
		"update_url":     configuration.UpdateURL,
		"asset_base_url": configuration.AssetBaseURL,
	} {
		if value == "" {
			continue
		}
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return coreerrors.Wrap(
				fmt.Errorf("client config %s is not an absolute URL: %q", name, value),
				coreerrors.CategoryInvalidInput,
				"config_invalid_url",
				"use an absolute http(s) URL",
				false,
			)
		}
	}
	return nil
}
