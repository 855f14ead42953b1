package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"jobmatch/internal/logger"
	"jobmatch/internal/recommender"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the matching service is up and which model it runs",
	Run: func(cmd *cobra.Command, _ []string) {
		health(cmd)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func health(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := recommender.New(context.Background(), logger, config.Server.URL, time.Duration(config.Server.TimeoutSeconds)*time.Second)

	report, err := client.GetHealth()
	if err != nil {
		logger.Fatal("matching service is unreachable",
			zap.String("server", config.Server.URL),
			zap.Error(err),
		)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (model %s)\n", config.Server.URL, report.Status, report.Model)
}
