package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/execkit/internal/domain/commands"
	"github.com/rios0rios0/execkit/internal/domain/entities"
	"github.com/rios0rios0/execkit/internal/infrastructure/controllers"
	"github.com/rios0rios0/execkit/pkg/shell"
)

// AppInternal aggregates the wired controllers for the CLI entrypoint.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns the controllers to mount as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The executor resolves through the shell substitution point, so a fake
	// installed by tests is honored here too.
	if err := container.Provide(func() shell.Executor { return shell.Default() }); err != nil {
		return err
	}

	// Register all layers (bottom-up: domain entities -> domain commands -> controllers)
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
