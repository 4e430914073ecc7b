package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/api"
	"github.com/ytget/imageboost/internal/config"
	"github.com/ytget/imageboost/internal/logger"
)

// Application identity
const (
	AppID   = "com.ytget.imageboost"
	AppName = "ImageBoost"
)

// environment is filled before any command runs
type environment struct {
	config config.Config
	log    *zap.Logger
}

// client builds a REST client from the loaded configuration
func (e *environment) client() (*api.Client, error) {
	return api.NewClient(e.config.APIURL, e.config.HTTPTimeout, e.log.Named("api"))
}

// NewRootCommand creates the imageboost command tree
func NewRootCommand(version string) *cobra.Command {
	env := &environment{}
	var configPath string

	cmd := &cobra.Command{
		Use:          "imageboost",
		Short:        "Upload images to an optimizing backend and browse the results",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			env.config = cfg
			env.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.log != nil {
				_ = env.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), env, version)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yaml or ./config.yaml)")
	flags.String("api-url", "", "backend base URL (default "+config.DefaultAPIURL+")")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newListCommand(env),
		newShowCommand(env),
		newUploadCommand(env),
		newDeleteCommand(env),
	)
	return cmd
}
