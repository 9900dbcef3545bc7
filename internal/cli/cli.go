package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SkanUJkod/SkanUJkod/internal/kernel"
	"github.com/SkanUJkod/SkanUJkod/internal/kernelerr"
	"github.com/SkanUJkod/SkanUJkod/internal/paramsurface"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
)

// analyses maps each CLI analysis name to the target QID it runs. Adding a
// plugin with a new top-level analysis means adding one line here.
var analyses = map[string]string{
	"cfg":         "cfg::build",
	"coverage":    "coverage::instrument",
	"complexity":  "complexity::cyclomatic",
	"git-metrics": "git::metrics",
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	pluginDir       string
	logLevel        string
	logFormat       string
	healthcheckPort int
}

// runOptions holds the per-run parameter inputs.
type runOptions struct {
	params     []string
	paramsFile string
}

// New assembles the command tree. Normal command output goes to outW;
// diagnostics and logs go to errW.
func New(outW, errW io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "skanujkod",
		Short:         "SkanUJkod - a plugin-oriented static-analysis framework for Go.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.pluginDir, "plugin-dir", "", "Directory to scan for plugin libraries. Defaults to $"+kernel.EnvPluginDir+" or a per-user fallback.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.IntVar(&opts.healthcheckPort, "healthcheck-port", 0, "Port for the HTTP health/metrics server. 0 is disabled.")

	root.AddCommand(newListCommand(opts, outW, errW))
	root.AddCommand(newRunCommand(opts, outW, errW))
	for _, name := range sortedAnalysisNames() {
		root.AddCommand(newAnalysisCommand(name, analyses[name], opts, outW, errW))
	}
	return root
}

func sortedAnalysisNames() []string {
	names := make([]string, 0, len(analyses))
	for name := range analyses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newKernel validates the persistent flags and constructs a kernel from the
// resolved plugin directory.
func newKernel(opts *rootOptions, errW io.Writer) (*kernel.Kernel, error) {
	if err := validateLogFlags(opts); err != nil {
		return nil, err
	}

	cfg, err := kernel.NewConfig(kernel.Config{
		PluginDir:       kernel.ResolvePluginDir(opts.pluginDir),
		LogLevel:        opts.logLevel,
		LogFormat:       opts.logFormat,
		HealthcheckPort: opts.healthcheckPort,
	})
	if err != nil {
		return nil, err
	}
	return kernel.New(errW, cfg)
}

func validateLogFlags(opts *rootOptions) error {
	switch strings.ToLower(opts.logFormat) {
	case "text", "json":
	default:
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch strings.ToLower(opts.logLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	return nil
}

func newListCommand(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every loaded plugin function, one QID per line, in registry order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := newKernel(opts, errW)
			if err != nil {
				return err
			}

			for _, q := range k.List() {
				if !verbose {
					fmt.Fprintln(outW, q)
					continue
				}
				fn, _ := k.Describe(q)
				deps := make([]string, len(fn.Dependencies))
				for i, d := range fn.Dependencies {
					deps[i] = d.String()
				}
				fmt.Fprintf(outW, "%s\tdeps=[%s]\tparams=[%s]\n", q, strings.Join(deps, ", "), strings.Join(fn.Parameters, ", "))
			}

			if verbose {
				for _, rejected := range k.LoadReport().Rejected {
					fmt.Fprintf(errW, "rejected %s: %v\n", rejected.Path, rejected.Err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print each function's dependencies, parameter keys, and load rejections.")
	return cmd
}

func newRunCommand(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	runOpts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <plugin_id::function_id> [key=value ...]",
		Short: "Plan and execute the given target plugin function.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := qid.Parse(args[0])
			if err != nil {
				return err
			}
			return runTarget(cmd, target, opts, runOpts, args[1:], outW, errW)
		},
	}
	addRunFlags(cmd, runOpts)
	return cmd
}

// newAnalysisCommand registers one named analysis as its own subcommand;
// the name resolves to exactly one target QID.
func newAnalysisCommand(name, targetStr string, opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	runOpts := &runOptions{}

	cmd := &cobra.Command{
		Use:   name + " [key=value ...]",
		Short: "Run the " + targetStr + " analysis.",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := qid.Parse(targetStr)
			if err != nil {
				return err
			}
			return runTarget(cmd, target, opts, runOpts, args, outW, errW)
		},
	}
	addRunFlags(cmd, runOpts)
	return cmd
}

func addRunFlags(cmd *cobra.Command, runOpts *runOptions) {
	cmd.Flags().StringArrayVarP(&runOpts.params, "param", "p", nil, "A key=value user parameter. Repeatable; positional key=value arguments are equivalent.")
	cmd.Flags().StringVar(&runOpts.paramsFile, "params-file", "", "Path to an HCL file of parameter attributes, overridden by --param and positional pairs.")
}

// runTarget assembles the parameter map, runs the kernel, and prints the
// final envelope's display projection on success.
func runTarget(cmd *cobra.Command, target qid.QID, opts *rootOptions, runOpts *runOptions, extraPairs []string, outW, errW io.Writer) error {
	var fileValues map[string]paramvalue.Value
	if runOpts.paramsFile != "" {
		loaded, err := paramsurface.LoadFile(runOpts.paramsFile)
		if err != nil {
			return err
		}
		fileValues = loaded
	}

	pairs := append(append([]string{}, runOpts.params...), extraPairs...)
	params, err := paramsurface.Build(fileValues, pairs)
	if err != nil {
		return err
	}

	k, err := newKernel(opts, errW)
	if err != nil {
		return err
	}
	defer k.Close(cmd.Context())

	env, err := k.Run(cmd.Context(), target, params)
	if err != nil {
		return err
	}

	fmt.Fprintln(outW, env.Display())
	return nil
}

// ExitCode maps an error returned by the command tree to the process exit
// code contract: 3 for an unavailable plugin directory, 2 for planning
// errors, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var dirErr *kernelerr.PluginDirectoryUnavailable
	if errors.As(err, &dirErr) {
		return 3
	}

	var (
		unknownTarget *kernelerr.UnknownTarget
		missingDep    *kernelerr.MissingDependency
		cycle         *kernelerr.DependencyCycle
		missingParam  *kernelerr.MissingParameter
	)
	if errors.As(err, &unknownTarget) || errors.As(err, &missingDep) || errors.As(err, &cycle) || errors.As(err, &missingParam) {
		return 2
	}

	return 1
}
