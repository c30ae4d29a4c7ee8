package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cncutils/tapspeed/internal/config"
	"github.com/cncutils/tapspeed/internal/gcode"
	"github.com/cncutils/tapspeed/internal/operations"
	"github.com/cncutils/tapspeed/internal/util"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg *config.Config
	var configPath string
	var quietMode bool
	var verboseMode bool

	opts := &operations.UpdateOptions{}
	var extFlag string
	var globFlag string

	var rootCmd = &cobra.Command{
		Use:   "tapspeed",
		Short: "Normalize spindle speed commands in CNC .tap programs",
		Long:  "Normalize spindle speed commands in CNC .tap programs\n\nExit codes:\n  0  - Success\n  1  - General error\n  66 - No eligible files found",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if quietMode {
				opts.Logger = util.New(io.Discard, false)
			} else if verboseMode {
				opts.Logger = util.New(os.Stdout, true)
			} else {
				opts.Logger = util.New(os.Stdout, false)
			}
			opts.QuietMode = quietMode
			opts.Extension = cfg.Extension
			if extFlag != "" {
				opts.Extension = extFlag
			}
			opts.GlobPattern = cfg.Glob
			if cmd.Flags().Changed("glob") {
				opts.GlobPattern = globFlag
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file (defaults to TAPSPEED_CONFIG env var or 'tapspeed.toml')")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress all output")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&extFlag, "ext", "", "Eligible file extension (defaults to config 'extension' or '.tap')")
	rootCmd.PersistentFlags().StringVarP(&globFlag, "glob", "g", "", "Glob pattern(s) to filter files (e.g., '**/*.tap', '**/*.tap,!**/old/**')")

	var updateCmd = &cobra.Command{
		Use:   "update <speed> [dir]",
		Short: "Rewrite the first spindle command of each program file to the given speed",
		Long:  "Rewrite the first spindle command of each program file to 'S<speed> M3'.\nFiles already at the target speed and files without a spindle command are left untouched.\n\nExit codes:\n  0  - Success\n  1  - General error\n  66 - No eligible files found",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			speed := args[0]
			root := "."
			if len(args) == 2 {
				root = args[1]
			}
			if err := gcode.ValidateSpeed(speed, cfg.MinSpeed, cfg.MaxSpeed); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if status := operations.UpdateMain(root, speed, opts); status != operations.UpdateSuccess {
				os.Exit(int(status))
			}
		},
	}
	updateCmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report what would change without writing anything")
	updateCmd.Flags().BoolVarP(&opts.Backup, "backup", "b", false, "Write a compressed backup next to each file before rewriting it")

	var restoreCmd = &cobra.Command{
		Use:   "restore [dir]",
		Short: "Restore program files from the backups written by 'update --backup'",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			if status := operations.RestoreMain(root, opts); status != operations.UpdateSuccess {
				os.Exit(int(status))
			}
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "Print the version number of tapspeed",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tapspeed version %s\n", version)
		},
	}

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
