package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	handlers "github.com/de-tools/cost-compass/pkg/handlers/estimate"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/server"
	"github.com/de-tools/cost-compass/pkg/services/config"
	"github.com/de-tools/cost-compass/pkg/services/cost"
	"github.com/de-tools/cost-compass/pkg/services/loc"
)

var (
	cfgPath           string
	profile           string
	estimationProfile string
	outputDir         string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Cost Compass",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.costcompasscfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .costcompasscfg file (default is $HOME/.costcompasscfg)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"Credentials profile used when a request carries no token")
	rootCmd.Flags().StringVar(&estimationProfile, "estimation-profile", "",
		"Path to a YAML estimation profile used to seed parameters that requests omit")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "",
		"Directory where each estimation saves its report and LOC breakdown")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	creds := &domain.Credentials{Host: loc.DefaultAPIBase}
	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		logger.Warn().Err(err).
			Msgf("no credentials file at `%s`; requests must carry their own token", cfgPath)
	} else {
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
		profiles, _ := registry.GetProfiles(ctx)
		for _, p := range profiles {
			logger.Info().Msgf("Found profile: `%s`", p)
		}

		creds, err = registry.GetCredentials(ctx, profile)
		if err != nil {
			return fmt.Errorf("failed to load credentials profile %q: %w", profile, err)
		}
	}

	var estProfile *cost.Profile
	if estimationProfile != "" {
		estProfile, err = cost.LoadProfile(estimationProfile)
		if err != nil {
			return fmt.Errorf("failed to load estimation profile %q: %w", estimationProfile, err)
		}
		logger.Info().Msgf("Estimation profile `%s` loaded.", estimationProfile)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
		}
	}

	collectorFactory := func(repo domain.Repo, token string, opts domain.LocOptions) handlers.Collector {
		if token == "" {
			token = creds.Token
		}
		client := loc.NewClient(creds.Host, token)
		return loc.NewCounter(client, repo, opts)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Registry:  cost.DefaultRegistry(),
			Collector: collectorFactory,
			Profile:   estProfile,
			OutputDir: outputDir,
			Logger:    logger,
		},
	})

	return webAPI.Start()
}
