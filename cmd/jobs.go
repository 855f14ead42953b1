package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"jobmatch/internal/logger"
	"jobmatch/internal/recommender"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List every job known to the matching service",
	Run: func(cmd *cobra.Command, _ []string) {
		jobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}

func jobs(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := recommender.New(context.Background(), logger, config.Server.URL, time.Duration(config.Server.TimeoutSeconds)*time.Second)
	browseJobs(client, newConsoleSurface(cmd.OutOrStdout()), logger)
}
