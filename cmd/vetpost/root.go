package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/cobra"

	"vetpost/backend/internal/config"
	"vetpost/backend/internal/logger"
)

// cliEnv is the state shared by the subcommands of one invocation.
type cliEnv struct {
	cfg      config.Config
	verbose  bool
	now      func() time.Time
	loadConf func() config.Config
}

// NewRootCmd returns the root command for the vetpost CLI
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cliEnv{now: time.Now, loadConf: config.Load})
}

func newRootCmd(env *cliEnv) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vetpost",
		Short:         "Plan vet-clinic social posts from the terminal",
		Long:          "vetpost looks up the topic of the day, generates a caption with hashtags and an image prompt, and searches matching pet photos.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env.cfg = env.loadConf()
			level := logger.ParseLevel(env.cfg.LogLevel)
			if env.verbose {
				level = logger.ParseLevel("debug")
			}
			// Logs go to stderr so stdout stays valid JSON.
			logger.InitWriter(cmd.ErrOrStderr(), level, env.cfg.LogFormat)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newTopicCmd(env))
	rootCmd.AddCommand(newTonesCmd())
	rootCmd.AddCommand(newGenerateCmd(env))
	rootCmd.AddCommand(newImagesCmd(env))

	return rootCmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
