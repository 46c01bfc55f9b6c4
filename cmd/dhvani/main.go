package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kartikaysharma/dhvani/internal/api"
	"github.com/kartikaysharma/dhvani/internal/config"
	"github.com/kartikaysharma/dhvani/internal/session"
	"github.com/kartikaysharma/dhvani/internal/tui"
)

var version = "dev"

func main() {
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "dhvani",
	Short: "Time-synced Hindi transcripts for YouTube videos in your terminal",
}

func init() {
	rootCmd.AddCommand(
		watchCmd(),
		submitCmd(),
		statusCmd(),
		transcriptCmd(),
		configureCmd(),
		versionCmd(),
	)
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [url]",
		Short: "Interactive transcript viewer",
		Long: `Interactive transcript viewer.
Submits the video for processing, shows transcript segments as the backend
produces them, and seeks the configured player when a segment is selected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The alt-screen TUI owns the terminal, so logs go to a file.
			f, err := tea.LogToFile(logFilePath(), "dhvani")
			if err == nil {
				defer f.Close()
			}

			manager, err := config.NewManager()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			if err := manager.StartWatching(ctx); err != nil {
				log.Printf("config manager: hot reload unavailable: %v", err)
			}
			defer manager.Stop()

			var url string
			if len(args) == 1 {
				url = args[0]
			}
			return tui.RunWatch(manager, url)
		},
	}
}

func submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <url>",
		Short: "Submit a video for processing and print the task id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			client := api.New(cfg.ToAPIConfig())
			taskID, err := client.StartProcessing(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to submit video: %w", err)
			}

			fmt.Println(taskID)
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id>",
		Short: "Show the processing status of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			client := api.New(cfg.ToAPIConfig())
			status, err := client.TaskStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			fmt.Printf("status: %s\n", status.Status)
			if status.TotalChunks > 0 {
				fmt.Printf("chunks: %d/%d\n", status.ProcessedChunks, status.TotalChunks)
			}
			if status.VideoID != "" {
				fmt.Printf("video:  %s\n", status.VideoID)
			}
			if status.Error != "" {
				fmt.Printf("error:  %s\n", status.Error)
			}
			return nil
		},
	}
}

func transcriptCmd() *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "transcript <task-id>",
		Short: "Print the transcript of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if follow {
				return followTranscript(cmd.Context(), cfg, args[0])
			}
			return printTranscript(cmd.Context(), cfg, args[0])
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep polling and print segments as they arrive")

	return cmd
}

func printTranscript(ctx context.Context, cfg *config.Config, taskID string) error {
	client := api.New(cfg.ToAPIConfig())
	page, err := client.Transcript(ctx, taskID, "")
	if err != nil {
		return fmt.Errorf("failed to get transcript: %w", err)
	}

	for _, s := range page.Sentences {
		printSentenceLines(s.StartTime, s.English, s.PronunciationHindi, s.TranslationHindi)
	}
	return nil
}

// followTranscript attaches a polling session to the task and streams new
// segments to stdout until the backend reports a terminal state.
func followTranscript(ctx context.Context, cfg *config.Config, taskID string) error {
	sess := session.New(api.New(cfg.ToAPIConfig()), session.Config{
		PollInterval: cfg.Backend.PollInterval,
	})
	defer sess.Stop()

	if err := sess.Resume(taskID); err != nil {
		return err
	}

	printed := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-sess.Updates():
			for _, seg := range snap.Segments[printed:] {
				printSentenceLines(seg.StartTime, seg.English, seg.PronunciationHindi, seg.TranslationHindi)
			}
			printed = len(snap.Segments)

			switch snap.State {
			case session.Completed:
				return nil
			case session.Failed:
				if snap.BackendError != "" {
					return fmt.Errorf("processing failed: %s", snap.BackendError)
				}
				if snap.LastErr != nil {
					return fmt.Errorf("processing failed: %w", snap.LastErr)
				}
				return fmt.Errorf("processing failed")
			}
		}
	}
}

func printSentenceLines(start, english, pronunciation, translation string) {
	fmt.Printf("[%s] %s\n", start, english)
	if pronunciation != "" {
		fmt.Printf("         %s\n", pronunciation)
	}
	if translation != "" {
		fmt.Printf("         %s\n", translation)
	}
	fmt.Println()
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		Long: `Interactive configuration wizard for dhvani.
This will guide you through setting up:
- The transcription backend and polling cadence
- How transcript timestamps seek the video (mpv or browser)
- Optional local re-translation of failed sentences
- Notification preferences`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.RunConfigure(cfg)
	if err != nil {
		return fmt.Errorf("configuration wizard error: %w", err)
	}

	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := result.Config.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		return err
	}

	if err := config.Save(result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("Configuration saved successfully!")

	configPath, _ := config.GetConfigPath()
	fmt.Printf("Config file location: %s\n", configPath)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dhvani version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func logFilePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		if err := os.MkdirAll(dir+"/dhvani", 0755); err == nil {
			return dir + "/dhvani/dhvani.log"
		}
	}
	return os.TempDir() + "/dhvani.log"
}
