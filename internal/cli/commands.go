package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyike/PulseGo/config"
	"github.com/dyike/PulseGo/internal/debug"
	"github.com/dyike/PulseGo/internal/display"
	"github.com/dyike/PulseGo/internal/export"
	"github.com/dyike/PulseGo/internal/gateway"
	"github.com/dyike/PulseGo/internal/session"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Initialize configuration early
	cfg := config.DefaultConfig()

	var configPath string
	var mgr *config.Manager

	rootCmd := &cobra.Command{
		Use:   "pulsego",
		Short: "PulseGo - Reddit Comment Sentiment Analysis",
		Long: `PulseGo analyzes the comment sentiment of Reddit posts.
Paste post URLs and it breaks the comments down into positive, neutral, and
negative shares with keyword clouds and sample comments, exportable as CSV.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				var err error
				mgr, err = config.NewManager(
					config.WithConfigPath(configPath),
					config.WithInitialConfig(cfg),
				)
				if err != nil {
					return fmt.Errorf("load config file: %w", err)
				}
				*cfg = mgr.Get()
				config.SetDefaultManager(mgr)
			}
			// Ensure directories exist
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			if err := debug.NewEinoDebugger(cfg).Initialize(); err != nil {
				log.Printf("[EinoDebug] %v", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			return runInteractiveMode(cfg, mgr)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON config file (created if missing, watched for changes)")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	return rootCmd
}

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [URL ...]",
		Short: "Analyze the comment sentiment of Reddit posts",
		Long: `Run a one-shot sentiment analysis over the given post URLs and print the
summary view. URLs can be passed as arguments or via --input.
Example: pulsego analyze https://reddit.com/r/golang/comments/abc --export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile, _ := cmd.Flags().GetString("input")
			exportCSV, _ := cmd.Flags().GetBool("export")

			return runAnalyzeCommand(cfg, args, inputFile, exportCSV)
		},
	}

	// Analyze command flags
	cmd.Flags().String("input", "", "File with one post URL per line")
	cmd.Flags().Bool("export", false, "Write the results CSV after analysis")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("PulseGo v1.0.0")
			fmt.Println("Reddit Comment Sentiment Analysis")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage PulseGo configuration settings",
	}

	// config show subcommand
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	// config validate subcommand
	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and provider credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	return configCmd
}

// runAnalyzeCommand executes a one-shot analysis over URLs from the command
// line or an input file.
func runAnalyzeCommand(cfg *config.Config, args []string, inputFile string, exportCSV bool) error {
	ctx := context.Background()

	rawInput := strings.Join(args, "\n")
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		rawInput = strings.TrimRight(rawInput+"\n"+string(data), "\n")
	}
	if strings.TrimSpace(rawInput) == "" {
		return fmt.Errorf("no URLs given: pass them as arguments or via --input")
	}

	provider, err := gateway.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	controller := session.NewController(provider)

	fmt.Printf("🚀 Analyzing posts with the %s provider\n", cfg.Provider)
	sess, err := controller.RunAnalysis(ctx, rawInput)
	if err != nil {
		return err
	}
	if sess.State() == session.StateFailed {
		display.DisplayError(sess.FailureMessage())
		return fmt.Errorf("analysis failed")
	}

	entry := sess.Selector().Current()
	display.RenderView(entry.Label, entry.Result)
	renderKeywordClouds(entry.Result)

	if exportCSV {
		path, err := export.WriteFile(sess.ExportSet(), cfg.ExportDir)
		if err != nil {
			return err
		}
		display.DisplaySuccess(fmt.Sprintf("CSV written to %s", path))
	}

	return nil
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config) {
	fmt.Println("📋 Current PulseGo Configuration:")
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("Project Directory:    %s\n", cfg.ProjectDir)
	fmt.Printf("Export Directory:     %s\n", cfg.ExportDir)
	fmt.Println()
	fmt.Printf("Analysis Provider:    %s\n", cfg.Provider)
	fmt.Printf("Model:                %s\n", cfg.Model)
	fmt.Printf("Backend URL:          %s\n", cfg.BackendURL)
	fmt.Printf("Analyzer Endpoint:    %s\n", cfg.AnalysisEndpoint)
	fmt.Println()
	fmt.Printf("Request Timeout:      %ds\n", cfg.RequestTimeoutSec)
	fmt.Printf("Max Tokens:           %d\n", cfg.MaxTokens)
	fmt.Printf("User Agent:           %s\n", cfg.UserAgent)
	fmt.Println()
	fmt.Printf("Debug Mode:           %t\n", cfg.Debug)
	fmt.Printf("Eino Debug:           %t\n", cfg.EinoDebugEnabled)
	if cfg.EinoDebugEnabled {
		fmt.Printf("Eino Debug Port:      %d\n", cfg.EinoDebugPort)
		fmt.Printf("Debug URL:            http://localhost:%d\n", cfg.EinoDebugPort)
	}
	fmt.Println()

	fmt.Println("🔌 Credentials:")
	fmt.Println("─────────────────────")
	if cfg.OpenAIAPIKey != "" {
		fmt.Println("OpenAI API:           ✅ Configured")
	} else {
		fmt.Println("OpenAI API:           ❌ Not configured")
	}
	if cfg.DeepSeekAPIKey != "" {
		fmt.Println("DeepSeek API:         ✅ Configured")
	} else {
		fmt.Println("DeepSeek API:         ❌ Not configured")
	}
	if cfg.AnalysisToken != "" {
		fmt.Println("Analyzer Token:       ✅ Configured")
	} else {
		fmt.Println("Analyzer Token:       ❌ Not configured")
	}
}

// validateConfig validates the configuration and provider credentials
func validateConfig(cfg *config.Config) error {
	fmt.Println("🔍 Validating PulseGo Configuration...")
	fmt.Println("═══════════════════════════════════════")

	fmt.Print("📁 Checking directories... ")
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Println("❌")
		return fmt.Errorf("directory validation failed: %w", err)
	}
	fmt.Println("✅")

	fmt.Print("⚙️  Checking configuration values... ")
	if err := cfg.Validate(); err != nil {
		fmt.Println("❌")
		return err
	}
	fmt.Println("✅")

	fmt.Print("🔑 Checking provider credentials... ")
	if err := cfg.ValidateProviderCredentials(); err != nil {
		fmt.Println("⚠️")
		fmt.Printf("  ⚠️  %v\n", err)
	} else {
		fmt.Println("✅")
	}

	fmt.Println()
	fmt.Println("💡 Tips:")
	fmt.Println("  • Set OPENAI_API_KEY or DEEPSEEK_API_KEY for LLM analysis")
	fmt.Println("  • Set PULSEGO_ANALYSIS_ENDPOINT to use a self-hosted analyzer")
	fmt.Println("  • Use 'pulsego' without arguments for interactive mode")

	return nil
}
