package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var replacer = strings.NewReplacer(".", "_", "-", "_")

type argType interface {
	string | bool | int | time.Duration | map[string]string | []string
}

// bindEnvMap registers a persistent flag per entry. The flag default is the current value of the bound
// variable, overridden by the entry's environment variable when set.
func bindEnvMap[T argType](cmd *cobra.Command, m map[*T]boundEnvVar[T]) {
	flags := cmd.PersistentFlags()
	for v, cfg := range m {
		envName := strings.ToUpper(replacer.Replace(cfg.Name))
		if cfg.Env != nil {
			envName = *cfg.Env
		}
		_ = viper.BindEnv(cfg.Name, envName)
		_, fromEnv := os.LookupEnv(envName)

		desc := fmt.Sprintf("[%s] %s", envName, cfg.Description)
		short := ""
		if cfg.Short != nil {
			short = *cfg.Short
		}

		switch vt := any(v).(type) {
		case *string:
			def := *vt
			if fromEnv {
				def = viper.GetString(cfg.Name)
			}
			flags.StringVarP(vt, cfg.Name, short, def, desc)
		case *bool:
			def := *vt
			if fromEnv {
				def = viper.GetBool(cfg.Name)
			}
			flags.BoolVarP(vt, cfg.Name, short, def, desc)
		case *int:
			def := *vt
			if fromEnv {
				def = viper.GetInt(cfg.Name)
			}
			flags.CountVarP(vt, cfg.Name, short, desc)
			_ = flags.Lookup(cfg.Name).Value.Set(strconv.Itoa(def))
		case *time.Duration:
			def := *vt
			if fromEnv {
				def = viper.GetDuration(cfg.Name)
			}
			flags.DurationVarP(vt, cfg.Name, short, def, desc)
		case *map[string]string:
			flags.StringToStringVarP(vt, cfg.Name, short, *vt, desc)
			setFromEnv(flags.Lookup(cfg.Name), envName)
		case *[]string:
			flags.StringSliceVarP(vt, cfg.Name, short, *vt, desc)
			setFromEnv(flags.Lookup(cfg.Name), envName)
		default:
			log.Panicf("command-args parsing error: unhandled default case for type %T", vt)
		}

		_ = viper.BindPFlag(cfg.Name, flags.Lookup(cfg.Name))
		if cfg.Hidden {
			_ = flags.MarkHidden(cfg.Name)
		}
	}
}

// setFromEnv parses a non-empty environment variable with the flag's own syntax (comma-separated, key=value
// pairs for maps). Flags given on the command line are merged on top.
func setFromEnv(flag *pflag.Flag, envName string) {
	raw := os.Getenv(envName)
	if raw == "" {
		return
	}
	if err := flag.Value.Set(raw); err != nil {
		log.Panicf("command-args parsing error: invalid value for %s: %v", envName, err)
	}
}
