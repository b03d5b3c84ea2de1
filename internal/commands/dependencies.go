package commands

import (
	"fmt"
	"time"

	"github.com/diogo/planet/internal/api"
	"github.com/diogo/planet/internal/config"
	"github.com/diogo/planet/internal/logging"
	"github.com/diogo/planet/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(client api.ClientInterface, initialFile string) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Client is the backend API client.
	Client api.ClientInterface

	// TUI is the terminal user interface.
	TUI TUIInterface
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(client api.ClientInterface, initialFile string) error {
	return tui.RunChat(client, initialFile)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI: &DefaultTUI{},
	}
}

// client returns the injected client or builds one from the configuration
func (d *Dependencies) client() (api.ClientInterface, error) {
	if d != nil && d.Client != nil {
		return d.Client, nil
	}
	return newClient()
}

// tui returns the injected TUI or the default one
func (d *Dependencies) tui() TUIInterface {
	if d != nil && d.TUI != nil {
		return d.TUI
	}
	return &DefaultTUI{}
}

// newClient creates an API client for the resolved backend URL
func newClient() (api.ClientInterface, error) {
	cfg, _ := config.LoadConfig()
	baseURL := config.ResolveAPIURL(apiURLFlag, cfg)

	client, err := api.NewClient(baseURL, api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logging.WithFields("base_url", baseURL, "timeout_seconds", cfg.TimeoutSeconds).Debug("client created")
	return client, nil
}
