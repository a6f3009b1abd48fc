package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

var (
	homeBase  string
	envFile   string
	logFormat string
	logLevel  string
	rootCmd   = &cobra.Command{
		Use:               "mytoken",
		Short:             "Deploy and operate the MyToken ERC20 contract",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
)

func init() {
	userHome, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	rootCmd.PersistentFlags().StringVar(&homeBase, "home", userHome, "base directory for mytoken (config will be under <home>/.mytoken)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file holding OWNER_ADDRESS, DEPLOYER_PRIVATE_KEY and RPC_URL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logFormatText, "log output format (text|json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", zerolog.InfoLevel.String(), "log level")
}

func homeDir() string {
	return filepath.Join(homeBase, ".mytoken")
}

func configFilePath() string {
	return filepath.Join(homeDir(), "config.toml")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	switch logFormat {
	case logFormatText:
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	case logFormatJSON:
		zlog.Logger = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	default:
		return fmt.Errorf("invalid log format %q (text|json)", logFormat)
	}
	return nil
}

// componentLogger returns the logger handed to the deployer and query components.
func componentLogger(out io.Writer) log.Logger {
	opts := []log.Option{
		log.LevelOption(zerolog.GlobalLevel()),
		log.TimeFormatOption(time.RFC3339),
	}
	if logFormat == logFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(out, opts...)
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		zlog.Error().Err(err).Msg("failed to execute command")
		return err
	}
	return nil
}
