package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"jobmatch/internal/input"
	"jobmatch/internal/logger"
	"jobmatch/internal/recommender"
	"jobmatch/internal/render"
	"jobmatch/internal/submit"
)

const (
	PromptUploadMode = "Upload a resume file (pdf or txt)"
	PromptTextMode   = "Describe your skills as free text"
	PromptCatalog    = "Browse the full job catalog"
	PromptExit       = "Exit"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against the job catalog and show ranked results",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("file", "f", "", "resume file to upload, non-interactive")
	matchCmd.Flags().StringP("text", "t", "", "free-text skills description, non-interactive")
	matchCmd.Flags().IntP("top-k", "k", 0, "number of results to request")
}

// match is the main command for the cli.
func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting jobmatch",
		zap.String("version", version),
		zap.String("server", config.Server.URL),
	)

	client := recommender.New(ctx, logger, config.Server.URL, time.Duration(config.Server.TimeoutSeconds)*time.Second)
	controller := input.NewController()
	surface := newConsoleSurface(cmd.OutOrStdout())
	coordinator := submit.New(client, controller, surface, logger)

	topK := resolveTopK(cmd, config.TopK)

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		controller.Select(input.ModeUpload)
		if err := selectFile(controller, surface, path); err != nil {
			surface.ShowNotice(err.Error())
			return
		}
		coordinator.Submit(topK)
		return
	}

	if text, _ := cmd.Flags().GetString("text"); text != "" {
		controller.Select(input.ModeText)
		controller.SetText(text)
		coordinator.Submit(topK)
		return
	}

	interact(client, controller, coordinator, surface, logger, topK)
}

// interact runs the prompt loop. The prompts are the event-dispatch layer:
// they only feed mode selections and inputs into the controller and trigger
// submissions.
func interact(client *recommender.Client, controller *input.Controller, coordinator *submit.Coordinator, surface *consoleSurface, logger *zap.Logger, topK int) {
	modePrompt := promptui.Select{
		Label: "What would you like to do?",
		Items: []string{PromptUploadMode, PromptTextMode, PromptCatalog, PromptExit},
	}

	for {
		_, choice, err := modePrompt.Run()
		if err != nil {
			logger.Info("exiting", zap.Error(err))
			return
		}

		switch choice {
		case PromptUploadMode:
			controller.Select(input.ModeUpload)

			pathPrompt := promptui.Prompt{Label: "Path to your resume file"}
			path, err := pathPrompt.Run()
			if err != nil {
				continue
			}

			if err := selectFile(controller, surface, path); err != nil {
				surface.ShowNotice(err.Error())
				continue
			}
			coordinator.Submit(topK)
		case PromptTextMode:
			controller.Select(input.ModeText)

			textPrompt := promptui.Prompt{Label: "Describe your skills and experience"}
			text, err := textPrompt.Run()
			if err != nil {
				continue
			}

			controller.SetText(text)
			coordinator.Submit(topK)
		case PromptCatalog:
			browseJobs(client, surface, logger)
		case PromptExit:
			return
		}
	}
}

// resolveTopK prefers an explicitly set flag value, even an out-of-bounds
// one, over the configured default. The coordinator does the bounds check.
func resolveTopK(cmd *cobra.Command, fallback int) int {
	if cmd.Flags().Changed("top-k") {
		k, _ := cmd.Flags().GetInt("top-k")
		return k
	}
	return fallback
}

// selectFile validates and holds the chosen resume file. On rejection the
// previously accepted file stays selected.
func selectFile(controller *input.Controller, surface *consoleSurface, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading resume file: %w", err)
	}

	file := input.FileInput{
		Name: filepath.Base(path),
		Size: info.Size(),
		Path: path,
	}

	if err := controller.SetFile(file); err != nil {
		return err
	}

	surface.ShowNotice("Selected " + controller.File().SizeLabel())
	return nil
}

// browseJobs fetches and renders the full catalog. A fetch failure yields a
// single notice and leaves whatever was already on screen alone.
func browseJobs(client *recommender.Client, surface *consoleSurface, logger *zap.Logger) {
	records, err := client.ListJobs()
	if err != nil {
		surface.ShowNotice("Could not load the job catalog. Please try again.")
		logger.Debug("catalog fetch failed", zap.Error(err))
		return
	}

	surface.ShowResult(render.Catalog(records))
}
