package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"profilescreen/internal/config"
	"profilescreen/internal/gateway"
	"profilescreen/internal/logging"
	"profilescreen/internal/popup"
	"profilescreen/internal/presenter"
	"profilescreen/internal/telemetry"
	"profilescreen/internal/ui"
)

// app holds what every subcommand needs, built in PersistentPreRunE.
type app struct {
	cfg       config.Config
	verbose   bool
	logger    *zap.Logger
	telemetry *telemetry.Provider
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	var (
		userID  int64
		gwURL   string
		fixture string
		policy  string
	)

	root := &cobra.Command{
		Use:   "profilescreen",
		Short: "Profile screen driven by a presenter",
		Long: `profilescreen shows a user's profile, promo component and saved
favourites in the terminal. Data comes from an HTTP backend
(--gateway / PROFILESCREEN_GATEWAY_URL) or a YAML fixture (--fixture).

Keys: r refresh, n name the favourites list, q quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("user") {
				cfg.UserID = userID
			}
			if flags.Changed("gateway") {
				cfg.GatewayURL = gwURL
			}
			if flags.Changed("fixture") {
				cfg.Fixture = fixture
			}
			if flags.Changed("policy") {
				cfg.FetchPolicy = policy
			}
			a.cfg = cfg

			a.logger, err = logging.New(cfg.LogLevel, a.verbose, cfg.LogFile)
			if err != nil {
				return err
			}
			a.telemetry, err = telemetry.NewProvider(cmd.Context(), telemetry.Options{Insecure: true})
			if err != nil {
				return fmt.Errorf("telemetry: %w", err)
			}
			a.telemetry.Install()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	pf := root.PersistentFlags()
	pf.Int64Var(&userID, "user", 1, "user id to load")
	pf.StringVar(&gwURL, "gateway", "", "backend base URL")
	pf.StringVar(&fixture, "fixture", "", "YAML fixture to serve instead of a backend")
	pf.StringVar(&policy, "policy", "independent", "overlapping fetch policy: independent or cancel-replace")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newFetchCmd(a))
	return root, a
}

func (a *app) shutdown() {
	if a.telemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.telemetry.Shutdown(ctx); err != nil {
			a.logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// gateway picks the HTTP backend when configured, else the fixture, else a
// built-in demo fixture.
func (a *app) gateway() (gateway.Gateway, error) {
	switch {
	case a.cfg.GatewayURL != "":
		g := gateway.NewHTTPGateway(a.cfg.GatewayURL, a.cfg.HTTPTimeout, a.logger.Named("gateway"))
		g.Limit = a.cfg.FetchLimit
		return g, nil
	case a.cfg.Fixture != "":
		return gateway.LoadFixture(a.cfg.Fixture)
	default:
		g, err := gateway.ParseFixture([]byte(demoFixture))
		if err != nil {
			return nil, err
		}
		g.Latency = 600 * time.Millisecond
		return g, nil
	}
}

// newPresenter builds the presenter for view. Retry on the error alert
// starts a new fetch.
func (a *app) newPresenter(view presenter.View) (*presenter.Presenter, error) {
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	policy, err := presenter.ParsePolicy(a.cfg.FetchPolicy)
	if err != nil {
		return nil, err
	}

	var p *presenter.Presenter
	hooks := presenter.Hooks{
		OnPopupButton: func(b popup.Button) {
			if b == popup.ButtonRetry && p != nil {
				p.TriggerFetch()
			}
		},
		OnAddedToList: func(ids []int64) {
			a.logger.Debug("favorites saved", zap.Int64s("ids", ids))
		},
	}
	p = presenter.New(view, gw, a.cfg.UserID,
		presenter.WithLogger(a.logger.Named("presenter")),
		presenter.WithTracer(a.telemetry.Tracer("profilescreen/presenter")),
		presenter.WithPolicy(policy),
		presenter.WithHooks(hooks),
	)
	return p, nil
}

func (a *app) runTUI() error {
	bridge := ui.NewViewBridge(nil)
	p, err := a.newPresenter(bridge)
	if err != nil {
		return err
	}
	defer p.Close()

	prog := tea.NewProgram(ui.NewAppModel(p).AsTeaModel(), tea.WithAltScreen())
	// Program.Send blocks until the update loop reads it, and the presenter
	// may call the bridge from inside Update.
	bridge.SetSender(func(msg tea.Msg) { go prog.Send(msg) })

	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

const demoFixture = `
productName: Trail running shoes
identity:
  name: Ada
  surname: Lovelace
component:
  title: Free shipping on your next order
  enabled: true
products:
  - id: 1042
    name: Trail runner
  - name: Discontinued item
  - id: 2210
    name: Running socks
`
