package logsetup

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type Options struct {
	Verbose  int8
	Encoding string
	Output   string
}

func DefaultOptions() *Options {
	var level int8

	if os.Getenv("ITX_DEBUG") != "" {
		level = 10
	}

	return &Options{
		Verbose: level,
		Output:  "stderr",
	}
}

func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.Int8VarP(&o.Verbose, "verbose", "v", o.Verbose, "Log verbosity level. 1 traces the value before and after the pipeline, 2 also logs registry activity.")
	fs.StringVar(&o.Encoding, "log-encoding", o.Encoding, "Log encoding, json or console. Defaults to console on a terminal and json otherwise.")
	fs.StringVar(&o.Output, "log-output", o.Output, "Log destination, stderr or a file path. Pipeline results always go to stdout.")
}

// ResolveEncoding returns the configured encoding, or picks one from whether
// stderr is a terminal.
func (o *Options) ResolveEncoding() (string, error) {
	switch o.Encoding {
	case EncodingJSON, EncodingConsole:
		return o.Encoding, nil
	case "":
		if o.Output == "stderr" && isTerminal(os.Stderr) {
			return EncodingConsole, nil
		}
		return EncodingJSON, nil
	}
	return "", errors.Errorf("unsupported log encoding %q", o.Encoding)
}

func (o *Options) Build() (logr.Logger, error) {
	encoding, err := o.ResolveEncoding()
	if err != nil {
		return logr.Discard(), err
	}

	output := o.Output
	if output == "" {
		output = "stderr"
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Encoding = encoding
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.Level(-1 * o.Verbose))
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.DisableStacktrace = true

	// logr verbosity is written as a positive V level
	zapConfig.EncoderConfig.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendInt(int(l) * -1)
	}

	zapLog, err := zapConfig.Build()
	if err != nil {
		return logr.Discard(), errors.Wrap(err, "failed to build logger")
	}

	return zapr.NewLogger(zapLog).WithName("itx"), nil
}
