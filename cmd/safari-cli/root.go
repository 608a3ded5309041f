package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/TamasNo1/safari-cli/pkg/config"
	"github.com/TamasNo1/safari-cli/pkg/driver"
	"github.com/TamasNo1/safari-cli/pkg/imaging"
	"github.com/TamasNo1/safari-cli/pkg/logging"
	"github.com/TamasNo1/safari-cli/pkg/output"
	"github.com/TamasNo1/safari-cli/pkg/paths"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

type globalFlags struct {
	configPath string
	port       int
	jsonOut    bool
	verbose    bool
	quiet      bool
	noColor    bool
}

// appState carries everything a command needs for one invocation. It is
// assembled in the persistent pre-run once flags are parsed.
type appState struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	flags globalFlags

	cfg     *config.Config
	logger  *logrus.Logger
	printer *output.Printer
	mgr     *driver.Manager

	// Seams for tests: left nil, setup fills in the real thing.
	newProcess  func(binary string) driver.ProcessControl
	newClient   func(port int) *webdriver.Client
	imageRunner imaging.Runner
}

func newAppState() *appState {
	return &appState{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func newRootCmd(st *appState) *cobra.Command {
	root := &cobra.Command{
		Use:   "safari-cli",
		Short: "Drive Safari through its WebDriver endpoint",
		Long: `safari-cli drives Safari through safaridriver's WebDriver endpoint.
A session started once is reused by every following invocation until it
is stopped, so page state carries across commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.flags.configPath, "config", "", "path to the config file")
	flags.IntVarP(&st.flags.port, "port", "p", 0, "driver port (overrides config)")
	flags.BoolVar(&st.flags.jsonOut, "json", false, "print results as JSON")
	flags.BoolVarP(&st.flags.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&st.flags.quiet, "quiet", "q", false, "log errors only")
	flags.BoolVar(&st.flags.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		getCmdStart(st), getCmdStop(st), getCmdStatus(st),
		getCmdNavigate(st), getCmdBack(st), getCmdForward(st), getCmdRefresh(st),
		getCmdURL(st), getCmdTitle(st), getCmdSource(st),
		getCmdFind(st), getCmdClick(st), getCmdText(st), getCmdTag(st),
		getCmdRect(st), getCmdAttr(st), getCmdProp(st),
		getCmdVisible(st), getCmdEnabled(st),
		getCmdExec(st),
		getCmdScreenshot(st),
		getCmdCookies(st),
		getCmdWindow(st), getCmdWindows(st), getCmdSwitchWindow(st), getCmdCloseWindow(st),
		getCmdResize(st), getCmdMaximize(st), getCmdMinimize(st), getCmdFullscreen(st),
		getCmdFrame(st), getCmdParentFrame(st), getCmdTopFrame(st),
		getCmdAlert(st),
		getCmdTimeouts(st),
		getCmdConsole(st), getCmdNetlog(st),
		getCmdVersion(st),
	)
	return root
}

// setup builds the configuration, logger, printer, and session manager
// for this invocation.
func (st *appState) setup() error {
	configPath := st.flags.configPath
	if configPath == "" {
		if p, err := paths.ConfigFile(); err == nil {
			configPath = p
		}
	}
	cfg, err := config.Load(st.fs, configPath)
	if err != nil {
		return err
	}

	if st.flags.port != 0 {
		cfg.Driver.Port = st.flags.port
	}
	if st.flags.jsonOut {
		cfg.Output.JSON = true
	}
	if st.flags.noColor {
		cfg.Output.NoColor = true
	}
	level := cfg.Log.Level
	switch {
	case st.flags.verbose:
		level = "debug"
	case st.flags.quiet:
		level = "error"
	}

	logger, err := logging.New(st.stderr, level, cfg.Log.Format, cfg.Output.NoColor)
	if err != nil {
		return err
	}

	st.cfg = cfg
	st.logger = logger
	st.printer = output.NewPrinter(st.stdout, st.stderr, cfg.Output.JSON, cfg.Output.NoColor)

	if st.newClient == nil {
		requestTimeout := cfg.Request.Timeout
		st.newClient = func(port int) *webdriver.Client {
			return webdriver.NewForPort(port,
				webdriver.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
				webdriver.WithLogger(logging.Component(logger, "webdriver")),
			)
		}
	}
	if st.newProcess == nil {
		st.newProcess = driver.NewProcessControl
	}

	sessionFile, err := paths.SessionFile()
	if err != nil {
		return fmt.Errorf("resolve session file path: %w", err)
	}
	st.mgr = driver.NewManager(driver.Options{
		Store:          driver.NewStore(st.fs, sessionFile),
		Process:        st.newProcess(cfg.Driver.Binary),
		NewClient:      st.newClient,
		Logger:         logging.Component(logger, "driver"),
		StartupTimeout: cfg.Driver.StartupTimeout,
		PollInterval:   cfg.Driver.PollInterval,
	})
	return nil
}

// session loads the persisted record and returns a protocol handle
// scoped to it.
func (st *appState) session() (*driver.Session, *webdriver.Session, error) {
	rec, err := st.mgr.RequireActive()
	if err != nil {
		return nil, nil, err
	}
	return rec, st.newClient(rec.Port).Session(rec.SessionID), nil
}

// imaging returns the screenshot processor for this invocation.
func (st *appState) imaging() *imaging.Processor {
	return imaging.NewProcessor(st.fs, st.imageRunner, st.cfg.Screenshots.Tool,
		logging.Component(st.logger, "imaging"))
}
