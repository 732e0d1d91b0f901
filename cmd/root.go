// File: cmd/root.go
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voxstitch/pkg/config"
	"voxstitch/pkg/logging"
	"voxstitch/pkg/stitch"
	"voxstitch/pkg/version"
)

const appName = "voxstitch"

// logger is injected by Execute and used unless the run asks for another level.
var logger *zap.Logger

var (
	flagConfig    string
	flagManifest  string
	flagClipboard bool
	flagVerbose   bool
)

// RootCmd is the base command; it performs the stitch itself.
var RootCmd = &cobra.Command{
	Use:   "voxstitch <source-dir> <output-file>",
	Short: "Voxstitch stitches numbered transcript files into one document",
	Long: `Voxstitch scans a directory of transcribed voice notes named like
<prefix>_<order>@<suffix>.txt, orders them by the numeric key embedded in each
filename, and concatenates them into a single markdown-like document with one
"# <filename>" block per transcript.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		log := logger
		if level := levelFor(cfg); level != "info" {
			log, err = logging.Setup(level, appName, version.Get().Version)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
		}

		arguments := stitch.Arguments{
			SourceDir: args[0],
			Output:    args[1],
			Manifest:  cfg.Manifest,
			Clipboard: cfg.Clipboard,
		}
		if cmd.Flags().Changed("manifest") {
			arguments.Manifest = flagManifest
		}
		if cmd.Flags().Changed("clipboard") {
			arguments.Clipboard = flagClipboard
		}

		_, err = stitch.Run(arguments, log)
		return err
	},
}

// Execute wires the application logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

// levelFor resolves the effective log level: --verbose wins, then the config
// file, then "info".
func levelFor(cfg config.Config) string {
	if flagVerbose {
		return "debug"
	}
	if cfg.LogLevel == "" {
		return "info"
	}
	return cfg.LogLevel
}

func init() {
	RootCmd.Flags().StringVar(&flagConfig, "config", "",
		"path to a YAML config file (default: ./"+config.DefaultFile+" if present)")
	RootCmd.Flags().StringVar(&flagManifest, "manifest", "",
		"also write a manifest of the stitched files to this path")
	RootCmd.Flags().BoolVar(&flagClipboard, "clipboard", false,
		"copy the stitched document to the system clipboard")
	RootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}
