package commands

import (
	"errors"
	"fmt"

	"github.com/petal-labs/herald/cli/config"
	"github.com/petal-labs/herald/cli/keystore"
	"github.com/petal-labs/herald/core"
	"github.com/petal-labs/herald/gateway"
)

// defaultClientFactory creates SDK clients backed by the HTTP gateway.
func defaultClientFactory() ClientFactory {
	return func(profile, apiKey, apiSecret string, cfg *config.Config) (*core.Client, error) {
		opts := []gateway.Option{}
		if pc := cfg.GetProfile(profile); pc != nil && pc.BaseURL != "" {
			opts = append(opts, gateway.WithBaseURL(pc.BaseURL))
		}

		gw, err := gateway.New(apiKey, apiSecret, opts...)
		if err != nil {
			return nil, err
		}
		return core.NewClient(gw), nil
	}
}

// resolveClient opens the keystore, reads the profile's credentials, and
// builds a client through the injected factory.
func (a *App) resolveClient() (*core.Client, error) {
	profile := a.profileName()

	ks, err := a.newKeystore()
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}

	apiKey, err := ks.Get(profile + ".api_key")
	if err != nil {
		var notFound *keystore.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("no API key stored for profile %q: run 'herald keys set %s' first", profile, profile)
		}
		return nil, fmt.Errorf("failed to read API key: %w", err)
	}

	apiSecret, err := ks.Get(profile + ".api_secret")
	if err != nil {
		var notFound *keystore.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("no API secret stored for profile %q: run 'herald keys set %s' first", profile, profile)
		}
		return nil, fmt.Errorf("failed to read API secret: %w", err)
	}

	return a.newClient(profile, apiKey, apiSecret, a.cfg)
}
