package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillsync-ai/simengine/internal/config"
	"github.com/skillsync-ai/simengine/internal/extract"
	"github.com/skillsync-ai/simengine/internal/imagegen"
	"github.com/skillsync-ai/simengine/internal/llm"
	"github.com/skillsync-ai/simengine/internal/server"
	"github.com/skillsync-ai/simengine/internal/session"
	"github.com/skillsync-ai/simengine/internal/sim"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the simulation engine HTTP server",
	Long:  `Starts the simengine API server with the document upload, simulation dialogue, and image generation endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, cfg.OllamaHost)
		if err != nil {
			return fmt.Errorf("creating chat provider: %w", err)
		}

		generator, err := createImageGenerator(cfg)
		if err != nil {
			return fmt.Errorf("creating image generator: %w", err)
		}

		store := session.NewStore()
		extractor := extract.New(extract.NewTesseractOCR(cfg.OCRLanguage))

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, store, provider, cfg.Model)

		// Feature routes.
		engine := sim.NewEngine(srv.Store(), extractor, srv.Provider(), srv.Model())
		sim.RegisterRoutes(srv.Router(), engine, srv.Store())

		resolver := imagegen.NewResolver(generator)
		imagegen.RegisterRoutes(srv.Router(), resolver, srv.Store())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "simengine v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Chat provider: %s (%s)\n", provider.Name(), cfg.Model)
		fmt.Fprintf(os.Stderr, "  Image model: %s\n", cfg.ImageModel)

		return srv.Start()
	},
}

// createImageGenerator builds the primary text-to-image generator. The
// resolver degrades to the public fallback endpoint at request time, so a
// missing key is an error here rather than later.
func createImageGenerator(cfg *config.Config) (imagegen.Generator, error) {
	apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for image generation")
	}
	return imagegen.NewOpenAIGenerator(apiKey, cfg.ImageModel), nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
