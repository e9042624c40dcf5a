package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var Version = "0.1.2"

var (
	rootCmd = &cobra.Command{
		Use:   "list-deps <root-file-path>",
		Short: "List imported JavaScript dependencies",
		Long: `Statically follows relative imports, re-exports, dynamic imports and requires
starting from a root file and lists every external package they reference.
Relative imports that could not be resolved are reported as skipped modules.`,
		Example: `  list-deps src/index.js
  list-deps src/index.ts -e ts -e tsx -e js
  list-deps src/index.js --json --files`,
		Args:    cobra.ExactArgs(1),
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := ListDepsFlags{
				Extensions:        extensionsFlag,
				ExtensionsChanged: cmd.Flags().Changed("extensions"),
				ConfigPath:        configPathFlag,
				JSON:              jsonFlag,
				ShowFiles:         filesFlag,
				Verbose:           verboseFlag,
			}
			return RunListDeps(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], flags)
		},
	}
)

var docsCmd = &cobra.Command{
	Use:    "doc-gen",
	Short:  "Generate CLI documentation",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doc.GenMarkdownTree(rootCmd, "./docs")
	},
}

var (
	extensionsFlag []string
	configPathFlag string
	jsonFlag       bool
	filesFlag      bool
	verboseFlag    bool
)

type ListDepsFlags struct {
	Extensions []string
	// ExtensionsChanged is set when extensions were given explicitly and take precedence over config
	ExtensionsChanged bool
	ConfigPath        string
	JSON              bool
	ShowFiles         bool
	Verbose           bool
}

// resolveConfig loads the explicitly given config, or the one found next to the root file
func resolveConfig(rootFilePath string, configPath string) (ListDepsConfig, error) {
	if configPath != "" {
		return LoadConfig(configPath)
	}
	found := FindConfigFile(filepath.Dir(rootFilePath))
	if found == "" {
		return ListDepsConfig{}, nil
	}
	return LoadConfig(found)
}

func RunListDeps(out io.Writer, errOut io.Writer, rootFilePath string, flags ListDepsFlags) error {
	config, err := resolveConfig(rootFilePath, flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	extensions := config.Extensions
	if flags.ExtensionsChanged || len(extensions) == 0 {
		extensions = flags.Extensions
	}

	opts := ListDepsOptions{Extensions: extensions}
	if flags.Verbose {
		logger := charmlog.NewWithOptions(errOut, charmlog.Options{
			Prefix: "list-deps",
			Level:  charmlog.DebugLevel,
		})
		logger.Debug("listing dependencies", "root", rootFilePath, "extensions", extensions)
		opts.Logger = logger
	}

	result := ApplyConfigFilters(ListDepsWithOptions(rootFilePath, opts), config)

	if flags.JSON {
		return FormatResultJSON(out, result, flags.ShowFiles)
	}

	FormatResult(out, errOut, result, flags.ShowFiles)
	return nil
}

func init() {
	rootCmd.Flags().StringSliceVarP(&extensionsFlag, "extensions", "e", defaultExtensions,
		"File extensions to look for when resolving modules, without leading dot")
	rootCmd.Flags().StringVar(&configPathFlag, "config", "",
		"Path to config file or directory containing it (default: next to the root file)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false,
		"Print the result as JSON")
	rootCmd.Flags().BoolVar(&filesFlag, "files", false,
		"Also list the internal files that were visited")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Log every module visited while following imports")

	rootCmd.AddCommand(docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
