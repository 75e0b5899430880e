package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/animalspotter/internal/client/client"
	"github.com/dmitrijs2005/animalspotter/internal/client/config"
	"github.com/dmitrijs2005/animalspotter/internal/client/models"
	"github.com/dmitrijs2005/animalspotter/internal/client/services"
	"github.com/dmitrijs2005/animalspotter/internal/logging"
)

type App struct {
	config          *config.Config
	authService     services.AuthService
	sightingService services.SightingService
	logger          logging.Logger
	reader          *bufio.Reader
	out             io.Writer
	location        *time.Location

	userName string
	lastList []string
}

// NewApp builds the CLI on top of already constructed services. Input is
// read from stdin and output goes to stdout.
func NewApp(c *config.Config, as services.AuthService, ss services.SightingService, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		config:          c,
		authService:     as,
		sightingService: ss,
		logger:          logger.With("module", "cli"),
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		location:        time.Local,
	}
}

// Run shows the login prompt when no session is held and then enters the
// REPL. It returns when the user exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Animal Spotter CLI (type 'help' for commands)")

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// report prints a user-facing explanation of err.
func (a *App) report(err error) {
	fmt.Fprintln(a.out, describeError(err))
}

func describeError(err error) string {
	if code, ok := client.StatusCode(err); ok {
		return fmt.Sprintf("Server responded with status %d", code)
	}

	switch {
	case errors.Is(err, models.ErrEmptyCredentials):
		return "Username and password must not be empty"
	case errors.Is(err, client.ErrNotSignedIn):
		return "You are not signed in, use 'login' first"
	case errors.Is(err, client.ErrUnauthorized):
		return "Session was rejected by the server, use 'login' again"
	case errors.Is(err, client.ErrTransport):
		return "Cannot reach the server"
	case errors.Is(err, client.ErrEmptyBody):
		return "Server sent an empty response"
	case errors.Is(err, client.ErrDecoding):
		return "Server sent a response that could not be read"
	case errors.Is(err, client.ErrEncoding):
		return "Request could not be built"
	default:
		return "Error: " + err.Error()
	}
}
