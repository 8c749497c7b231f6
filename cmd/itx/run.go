package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/ib-77/itx/pkg/it"
	"github.com/ib-77/itx/pkg/it/celx"
	"github.com/ib-77/itx/pkg/it/registry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pipeline over a document",
	Example: `  itx run -f people.yaml --each --where 'it.age > 18' --step 'get last' --step 'or none'
  echo '{"a": {"b": 2}}' | itx run --step 'get a' --step 'get b'`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

type outputFormat string

const (
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

type runFlags struct {
	file   string
	steps  []string
	each   bool
	where  string
	output string
}

var runArgs = runFlags{}

func init() {
	runCmd.Flags().StringVarP(&runArgs.file, "file", "f", "-", "Input document, - reads stdin")
	runCmd.Flags().StringArrayVarP(&runArgs.steps, "step", "s", nil, "Pipeline step as \"name arg, arg\"; repeat for more steps")
	runCmd.Flags().BoolVar(&runArgs.each, "each", false, "Run the steps on every element of the document instead of the document itself")
	runCmd.Flags().StringVar(&runArgs.where, "where", "", "CEL expression keeping only the elements for which it is true")
	runCmd.Flags().StringVarP(&runArgs.output, "output", "o", string(outputJSON), "Output format, json or yaml")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if runArgs.file != "" && runArgs.file != "-" {
		f, err := os.Open(runArgs.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return execute(in, cmd.OutOrStdout(), runArgs, logger)
}

func execute(in io.Reader, out io.Writer, opts runFlags, logger logr.Logger) error {
	format := outputFormat(opts.output)
	if format != outputJSON && format != outputYAML {
		return errors.Errorf("unsupported output format %q", opts.output)
	}

	logger = logger.WithValues("run", uuid.New().String())

	p, err := buildPipeline(opts, logger)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "failed to parse input")
	}

	result, err := it.Try(p, doc)
	if err != nil {
		return errors.Wrap(err, "pipeline failed")
	}
	logger.V(1).Info("pipeline finished", "steps", len(opts.steps))

	return write(out, format, result)
}

func buildPipeline(opts runFlags, logger logr.Logger) (it.Pipeline, error) {
	r := registry.Builtin(registry.WithLogger(logger))
	if err := celx.Register(r); err != nil {
		return it.Identity(), err
	}

	calls, err := registry.ParseCalls(opts.steps...)
	if err != nil {
		return it.Identity(), err
	}

	p, err := r.Build(calls...)
	if err != nil {
		return it.Identity(), err
	}

	if opts.each {
		p = it.MapOver(p)
	}

	if opts.where != "" {
		prg, err := celx.Compile(opts.where)
		if err != nil {
			return it.Identity(), err
		}
		p = it.SelectWhere(prg.Step()).Compose(p)
	}

	return it.Trace(logger, "input").Compose(p).Trace(logger, "output"), nil
}

func write(out io.Writer, format outputFormat, v any) error {
	switch format {
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to encode output")
		}
		_, err = out.Write(b)
		return err
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to encode output")
	}
}
