// Package commands provides the cobra command tree of the flexschema CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/erraggy/flexschema"
	"github.com/erraggy/flexschema/internal/cliutil"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "FLEXSCHEMA"

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  zerolog.Logger
}

// Execute runs the root command until it finishes or an interrupt arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		cliutil.NewPrinter(root.ErrOrStderr(), false).Errorf("%v", err)
	}
	return err
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "flexschema",
		Short: "Generate typed models from JSON/YAML schema documents",
		Long: `flexschema parses schema documents written in JSON or YAML and generates
TypeScript types, MongoEngine documents and Go structs from them.

Configuration is read from flags, FLEXSCHEMA_* environment variables (a .env
file in the working directory is loaded first) and an optional flexschema.yaml
in the working directory or $HOME/.config/flexschema.`,
		Version:       flexschema.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			a.initLogging(cmd)
			if used := a.v.ConfigFileUsed(); used != "" {
				a.logger.Debug().Str("file", used).Msg("using config file")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./flexschema.yaml or $HOME/.config/flexschema/flexschema.yaml)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("no-color", root.PersistentFlags().Lookup("no-color"))

	root.AddCommand(
		a.newGenerateCmd(),
		a.newParseCmd(),
		a.newCheckCmd(),
		a.newMCPCmd(),
		a.newVersionCmd(),
	)

	return root
}

// initConfig loads .env, the config file and environment variables.
func (a *app) initConfig(cmd *cobra.Command) error {
	_ = godotenv.Load()

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("flexschema")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "flexschema"))
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// initLogging configures a console logger on stderr at the configured level.
func (a *app) initLogging(cmd *cobra.Command) {
	level, err := zerolog.ParseLevel(strings.ToLower(a.v.GetString("log-level")))
	if err != nil || a.v.GetString("log-level") == "" {
		level = zerolog.WarnLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: a.v.GetBool("no-color"),
	}).Level(level).With().Timestamp().Logger()
}

// bindFlags binds the named flags of cmd into the configuration. Binding
// happens when the command runs so commands sharing a flag name do not
// shadow each other.
func (a *app) bindFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = a.v.BindPFlag(name, f)
		}
	}
}

// stringList reads a list setting, accepting comma separated values from
// environment variables and config files alike.
func (a *app) stringList(key string) []string {
	var out []string
	for _, item := range a.v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// printer returns a status printer for cmd's stderr.
func (a *app) printer(cmd *cobra.Command) *cliutil.Printer {
	return cliutil.NewPrinter(cmd.ErrOrStderr(), a.v.GetBool("no-color"))
}

// inputPath picks the input from the positional argument or --input-file.
func inputPath(cmd *cobra.Command, args []string) (string, error) {
	flagValue, _ := cmd.Flags().GetString("input-file")
	switch {
	case len(args) > 0 && flagValue != "":
		return "", fmt.Errorf("give the input either as an argument or with --input-file, not both")
	case len(args) > 0:
		return args[0], nil
	case flagValue != "":
		return flagValue, nil
	}
	return "", fmt.Errorf("no input file given")
}

// addInputFlag registers --input-file on fs.
func addInputFlag(fs *pflag.FlagSet) {
	fs.StringP("input-file", "i", "", "schema document to read (JSON or YAML)")
}
