package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mayazahavi/bash-mini-shell/core"
	"github.com/mayazahavi/bash-mini-shell/core/config"
)

var cfgPath string

// rootCmd is the whole CLI surface: a bare invocation that starts the
// interactive loop. There are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "bash-mini",
	Short: "A minimal interactive command interpreter.",
	Long: `bash-mini reads one command line at a time, handles exit and cd
itself and runs everything else from $HOME or /bin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := config.Load(afero.NewOsFs(), cfgPath)
		if err != nil {
			return err
		}

		shell, err := core.NewShell(configuration, os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		defer shell.Close()

		// The shell always exits 0, even after a fatal read error.
		shell.Run()
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
