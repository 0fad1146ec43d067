// Package cmd provides the entrypoint for the gateway-interceptor cli.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/gateway-interceptor/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilePath string
	logger         *slog.Logger
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for the gateway-interceptor.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gateway-interceptor",
		Short:        "Rewrites gateway requests: forwards headers and injects them into the request arguments",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = newLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch config.Global.Mode {
			case config.ModeService:
				return cmdService().RunE(cmd, args)
			case config.ModeLambda:
				return cmdLambda().RunE(cmd, args)
			default:
				return fmt.Errorf("invalid mode: %s", config.Global.Mode)
			}
		},
	}

	// Root command flags. The configuration file is loaded before flag parsing, so its path is
	// pre-scanned from the raw arguments.
	configFilePath = "config.yaml"
	if v, found := os.LookupEnv("CONFIG_FILE"); found {
		configFilePath = v
	}
	configFilePath = configPathFromArgs(os.Args[1:], configFilePath)
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", configFilePath, "[CONFIG_FILE] path to the configuration file")

	// Configuration loading & defaults
	if err := errors.Join(
		config.LoadFromFile(configFilePath),
		config.SetDefaults(),
	); err != nil {
		panic(err)
	}

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdLambda(),
		cmdService(),
	)

	return cmd
}

func configPathFromArgs(args []string, def string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return def
		case (arg == "-c" || arg == "--config") && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return def
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: config.Global.Logging.CallerTrace,
		Level:     slog.LevelWarn - slog.Level(config.Global.Logging.Verbosity*4),
	})).With("mode", config.Global.Mode)
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
	bindEnvMap(cmd, envMapDuration)
	bindEnvMap(cmd, envMapStringMap)
	bindEnvMap(cmd, envMapStringSlice)
}
