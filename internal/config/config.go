// Package config fills command line flags from ITX_* environment variables, a
// .env file and an optional YAML or JSON config file. Flags given on the
// command line always win.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "ITX"

// Files names the optional sources read by Load. An empty path is skipped.
type Files struct {
	Config string
	Env    string
}

// Load reads files and the environment into a viper instance bound to fs.
func Load(fs *pflag.FlagSet, files Files) (*viper.Viper, error) {
	if files.Env != "" && exists(files.Env) {
		if err := godotenv.Load(files.Env); err != nil {
			return nil, errors.Wrapf(err, "failed to load env file %s", files.Env)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	if files.Config != "" {
		v.SetConfigFile(files.Config)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", files.Config)
		}
	}

	return v, nil
}

// Apply copies every value viper knows for a flag that was not set on the
// command line back into the flag. Slice flags take a list from a config file
// or a ";" separated string from the environment.
func Apply(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}

		raw := v.Get(f.Name)
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			if err = sv.Replace(List(raw)); err != nil {
				err = errors.Wrapf(err, "invalid value for %s", f.Name)
			}
			return
		}

		if err = fs.Set(f.Name, fmt.Sprint(raw)); err != nil {
			err = errors.Wrapf(err, "invalid value for %s", f.Name)
		}
	})
	return err
}

// List normalizes a config or environment value into a list of strings.
func List(raw any) []string {
	switch val := raw.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []any:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = fmt.Sprint(item)
		}
		return out
	case string:
		return SplitSteps(val)
	}
	return []string{fmt.Sprint(raw)}
}

// SplitSteps splits "get a; pluck b" into trimmed, non-empty parts.
func SplitSteps(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
