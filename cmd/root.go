package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "jobmatch"

	defaultServerURL      = "http://127.0.0.1:5000"
	defaultTopK           = 5
	defaultTimeoutSeconds = 30
)

type Config struct {
	Server *ServerConfig `mapstructure:"server"`
	TopK   int           `mapstructure:"top-k"`
}

type ServerConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout-seconds"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmatch is a cli for matching a resume against a job catalog and browsing the ranked results",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("server.url", "JOBMATCH_SERVER"); err != nil {
		log.Fatalf("binding JOBMATCH_SERVER environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobmatch.yaml in current directory)")
	rootCmd.PersistentFlags().StringP("server", "s", "", "base url of the matching service")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A .env next to the binary keeps local runs simple; absence is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// We can't proceed if an explicitly requested config file is broken.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Server.URL == "" {
		config.Server.URL = defaultServerURL
	}
	if config.Server.TimeoutSeconds <= 0 {
		config.Server.TimeoutSeconds = defaultTimeoutSeconds
	}
	if config.TopK <= 0 {
		config.TopK = defaultTopK
	}

	return config, nil
}
