package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/concat/pkg/concat"
	"github.com/arthur-debert/concat/pkg/config"
	"github.com/arthur-debert/concat/pkg/filesystem"
	"github.com/arthur-debert/concat/pkg/logging"
	"github.com/arthur-debert/concat/pkg/paths"
	"github.com/arthur-debert/concat/pkg/pipeline"
	"github.com/arthur-debert/concat/pkg/style"
	"github.com/spf13/cobra"
)

type buildFlags struct {
	root        string
	configFile  string
	output      string
	files       []string
	searchPaths []string
	keep        bool
	forceOutput bool
	separator   string
	noNewline   bool
	source      string
	destination string
	clean       bool
}

func newBuildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.root, "root", "", MsgFlagRoot)
	f.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	f.StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	// StringArray keeps commas inside brace patterns intact
	f.StringArrayVarP(&flags.files, "files", "f", nil, MsgFlagFiles)
	f.StringArrayVar(&flags.searchPaths, "search-path", nil, MsgFlagSearchPath)
	f.BoolVar(&flags.keep, "keep", false, MsgFlagKeep)
	f.BoolVar(&flags.forceOutput, "force-output", false, MsgFlagForceOutput)
	f.StringVar(&flags.separator, "separator", "", MsgFlagSeparator)
	f.BoolVar(&flags.noNewline, "no-newline", false, MsgFlagNoNewline)
	f.StringVar(&flags.source, "source", "", MsgFlagSource)
	f.StringVar(&flags.destination, "destination", "", MsgFlagDestination)
	f.BoolVar(&flags.clean, "clean", false, MsgFlagClean)

	cmd.MarkFlagsMutuallyExclusive("separator", "no-newline")

	return cmd
}

func runBuild(cmd *cobra.Command, flags buildFlags) error {
	logger := logging.GetLogger("cli.build")
	defer logging.LogDuration(time.Now(), "cli.build")

	root, err := resolveRoot(flags.root)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		Root:       root,
		ConfigFile: flags.configFile,
		Overrides:  overrides(cmd, flags),
	})
	if err != nil {
		return err
	}

	plugin, err := concat.Plugin(cfg.Concat)
	if err != nil {
		return err
	}

	p := pipeline.New(root, filesystem.NewOS()).
		Source(cfg.Source).
		Destination(cfg.Destination).
		Clean(cfg.Clean)

	logger.Info().
		Str("root", root).
		Str("source", p.SourcePath()).
		Str("destination", p.DestinationPath()).
		Msg("Starting build")

	files, err := p.Build(cmd.Context(), plugin)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, style.Success(fmt.Sprintf(MsgBuilt, style.Path(cfg.Concat.Output))))
	fmt.Fprintln(out, style.Indent(style.Muted(fmt.Sprintf(MsgBuildSummary, files.Len(), p.DestinationPath())), 1))
	if cfg.File != "" {
		fmt.Fprintln(out, style.Indent(style.Muted(fmt.Sprintf(MsgConfigUsed, cfg.File)), 1))
	}
	return nil
}

func resolveRoot(flag string) (string, error) {
	root := flag
	if root == "" {
		root = os.Getenv(paths.EnvRoot)
	}
	if root == "" {
		root = "."
	}
	return paths.ResolveRoot(root)
}

// overrides returns the config keys set on the command line
func overrides(cmd *cobra.Command, flags buildFlags) map[string]interface{} {
	set := cmd.Flags().Changed
	values := map[string]interface{}{}

	if set("output") {
		values[config.KeyOutput] = flags.output
	}
	if set("files") {
		values[config.KeyFiles] = flags.files
	}
	if set("search-path") {
		values[config.KeySearchPaths] = flags.searchPaths
	}
	if set("keep") {
		values[config.KeyKeepConcatenated] = flags.keep
	}
	if set("force-output") {
		values[config.KeyForceOutput] = flags.forceOutput
	}
	if set("separator") {
		values[config.KeySeparator] = flags.separator
	}
	if set("no-newline") {
		values[config.KeyInsertNewline] = !flags.noNewline
	}
	if set("source") {
		values[config.KeySource] = flags.source
	}
	if set("destination") {
		values[config.KeyDestination] = flags.destination
	}
	if set("clean") {
		values[config.KeyClean] = flags.clean
	}
	return values
}
