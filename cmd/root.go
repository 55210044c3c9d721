package cmd

import (
	"errors"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "feedback-arcade",
	Short:         "Feedback form and memory game service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd, scoresCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.Log.Errorf("%v", err)
	}
	return err
}

// loadConfig reads config.yaml and the environment. A missing file is fine,
// every setting has a default.
func loadConfig() error {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		logging.Log.Warn("no config file found, using defaults")
	}

	logging.BootstrapLogger(viper.GetString("log.level"))
	return nil
}
