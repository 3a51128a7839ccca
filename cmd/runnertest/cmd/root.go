package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/psantana5/runnertest/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "runnertest",
	Short: "Run the RunnerTest suite with freeze control",
	Long: `runnertest drives the Runner model through its validation scenarios.
Cases are gated on the suite's frozen flag: a frozen suite reports every
case as skipped without running it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrCasesFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.runnertest/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "report format: text, table, json or yaml")
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	config.Setup(viper.GetViper(), cfgFile)
}

// loadConfig returns the effective configuration for the current invocation
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}
