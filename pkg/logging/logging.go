package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until Setup runs.
var Logger = zap.NewNop()

// Options selects how the process logger is built.
type Options struct {
	Debug      bool // development encoder at debug level
	Quiet      bool // warnings and errors only
	AppName    string
	AppVersion string
}

// Setup builds Logger from opts and installs it as the zap global. All
// output goes to stderr so stdout stays free for command results.
func Setup(opts Options) error {
	cfg := zap.NewProductionConfig()
	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	}
	if opts.Quiet && !opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}
	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
