package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/planararm/config"
	"go.viam.com/planararm/logging"
	"go.viam.com/planararm/simulation"
)

// newLogger returns a logger writing to the app's error stream at --log-level. --debug
// overrides the level.
func newLogger(c *cli.Context) (logging.Logger, error) {
	level := logging.DEBUG
	if !c.Bool(FlagDebug) {
		var err error
		if level, err = logging.LevelFromString(c.String(FlagLogLevel)); err != nil {
			return nil, err
		}
	}
	logger := logging.NewBlankLogger("planararm")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if path := c.Path(FlagLogFile); path != "" {
		appender := logging.NewFileAppender(path)
		c.App.Metadata[metadataLogFile] = appender
		logger.AddAppender(appender)
	}
	logger.SetLevel(level)
	return logger, nil
}

const metadataLogFile = "logFile"

// closeLogFile closes the --log-file appender opened by newLogger, if any.
func closeLogFile(c *cli.Context) error {
	appender, ok := c.App.Metadata[metadataLogFile].(*logging.FileAppender)
	if !ok {
		return nil
	}
	delete(c.App.Metadata, metadataLogFile)
	return appender.Close()
}

// armConfigFromFlags reads --config, or builds a config out of --lengths and --angles. It returns
// nil when neither is set.
func armConfigFromFlags(c *cli.Context, logger logging.Logger) (*config.ArmConfig, error) {
	if path := c.String(FlagConfig); path != "" {
		return config.ReadFile(path, logger)
	}
	lengths := c.Float64Slice(FlagLengths)
	if len(lengths) == 0 {
		return nil, nil
	}
	cfg, err := config.NewArmConfig("cli", lengths, c.Float64Slice(FlagAngles))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate("arm"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// simulationFromFlags is like armConfigFromFlags but requires an arm to be described.
func simulationFromFlags(c *cli.Context) (*simulation.Simulation, logging.Logger, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := armConfigFromFlags(c, logger)
	if err != nil {
		return nil, nil, err
	}
	if cfg == nil {
		return nil, nil, errors.Errorf("describe the arm with --%s or --%s", FlagConfig, FlagLengths)
	}
	sim, err := simulation.FromConfig(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return sim, logger, nil
}
