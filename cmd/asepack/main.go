package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aseprite-tools/asepack/internal/app"
	"github.com/aseprite-tools/asepack/internal/config"
	"github.com/aseprite-tools/asepack/internal/domain"
	"github.com/aseprite-tools/asepack/internal/packager"
	"github.com/aseprite-tools/asepack/internal/semver"
	"github.com/aseprite-tools/asepack/internal/utils"
	"github.com/aseprite-tools/asepack/pkg/version"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asepack",
	Short: "Package an Aseprite extension",
	Long: `Asepack bumps the version in an extension manifest and packages the
extension's manifest, script sources, and assets into a distributable
artifact: either a compressed archive or a plain directory tree.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.asepack/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest", "m", config.DefaultManifest, "Extension manifest file")
	rootCmd.PersistentFlags().StringP("source", "s", config.DefaultSourceDir, "Source root containing script files")
	rootCmd.PersistentFlags().StringP("assets", "a", config.DefaultAssetsDir, "Asset root (structure is preserved)")
	rootCmd.PersistentFlags().String("script-ext", config.DefaultScriptExt, "Recognized script file extension")
	rootCmd.PersistentFlags().String("archive-ext", config.DefaultArchiveExt, "Artifact suffix in zip mode")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("build.manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("build.source_dir", rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("build.assets_dir", rootCmd.PersistentFlags().Lookup("assets"))
	_ = viper.BindPFlag("build.script_ext", rootCmd.PersistentFlags().Lookup("script-ext"))
	_ = viper.BindPFlag("publish.archive_ext", rootCmd.PersistentFlags().Lookup("archive-ext"))

	rootCmd.AddCommand(bumpCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

var bumpCmd = &cobra.Command{
	Use:   "bump <major|minor|patch|increment>",
	Short: "Bump the manifest version without packaging",
	Long: `Bump increments one component of the manifest's dotted version and
zeroes every component below it, then rewrites the manifest in place.
This is the legacy simple form; publish is the canonical command.`,
	Args: cobra.ExactArgs(1),
	RunE: runBump,
}

var publishCmd = &cobra.Command{
	Use:   "publish <category> <method> <mode> [dest]",
	Short: "Bump the manifest version and package the extension",
	Long: `Publish runs the full pipeline: bump the manifest version, collect the
manifest, script sources, and assets, and write them to the destination
root as either a compressed archive (zip) or a mirrored directory tree
(no_zip).

Arguments:
  category  "*" for everything, or the name of one first-level source
            subdirectory to include (files at the source root always ship)
  method    major | minor | patch | increment | none
  mode      zip | no_zip
  dest      destination root for the artifact; defaults to the configured
            publish directory (` + config.DefaultPublishDir + `)`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runPublish,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

func runBump(cmd *cobra.Command, args []string) error {
	opts, err := parseBumpArgs(args)
	if err != nil {
		return err
	}
	opts.Verbose = verbose

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	expandPaths(cfg, &opts)

	orchestrator, err := app.NewOrchestrator(cfg, opts)
	if err != nil {
		return err
	}

	_, _, err = orchestrator.Bump()
	return err
}

func runPublish(cmd *cobra.Command, args []string) error {
	opts, err := parsePublishArgs(args)
	if err != nil {
		return err
	}
	opts.Verbose = verbose
	opts.ShowBar = !verbose

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DestDir == "" {
		opts.DestDir = cfg.Publish.Directory
	}
	expandPaths(cfg, &opts)

	orchestrator, err := app.NewOrchestrator(cfg, opts)
	if err != nil {
		return err
	}

	_, err = orchestrator.Run(cmd.Context())
	return err
}

// parseBumpArgs validates the simple form: one increment method, with
// "none" excluded since a bare bump that does nothing is a usage mistake.
func parseBumpArgs(args []string) (app.Options, error) {
	method, err := semver.ParseMethod(args[0])
	if err != nil {
		return app.Options{}, err
	}
	if method == semver.MethodNone {
		allowed := []string{"major", "minor", "patch", "increment"}
		return app.Options{}, domain.NewUsageError("increment method", args[0], allowed)
	}
	return app.Options{Method: method}, nil
}

// parsePublishArgs validates the extended form:
// <category> <method> <mode> [dest]
// An omitted dest is left empty and resolved from configuration later.
func parsePublishArgs(args []string) (app.Options, error) {
	method, err := semver.ParseMethod(args[1])
	if err != nil {
		return app.Options{}, err
	}

	mode, err := packager.ParseMode(args[2])
	if err != nil {
		return app.Options{}, err
	}

	opts := app.Options{
		Category: args[0],
		Method:   method,
		Mode:     mode,
	}
	if len(args) > 3 {
		opts.DestDir = args[3]
	}
	return opts, nil
}

// expandPaths expands ~ in every user-supplied path before the pipeline
// touches the filesystem.
func expandPaths(cfg *config.Config, opts *app.Options) {
	cfg.Build.Manifest = utils.ExpandPath(cfg.Build.Manifest)
	cfg.Build.SourceDir = utils.ExpandPath(cfg.Build.SourceDir)
	cfg.Build.AssetsDir = utils.ExpandPath(cfg.Build.AssetsDir)
	cfg.Publish.Directory = utils.ExpandPath(cfg.Publish.Directory)
	if opts.DestDir != "" {
		opts.DestDir = utils.ExpandPath(opts.DestDir)
	}
}
