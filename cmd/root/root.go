// Package root contains the root command for the application
package root

import (
	"bankaustria-csv/internal/baparser"
	"bankaustria-csv/internal/common"
	"bankaustria-csv/internal/config"
	"bankaustria-csv/internal/currencyutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankaustria-csv",
		Short: "A CLI tool to convert Bank Austria CSV exports into normalized transaction CSV files.",
		Long: `bankaustria-csv converts the semicolon-delimited CSV account exports of
Bank Austria into normalized transaction records. It classifies the
free-text booking narratives (POS, ATM, SEPA documents) into structured
memo and payee fields and recomputes the running balance.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankaustria-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger to all parser packages.
			baparser.SetLogger(Log)
			common.SetLogger(Log)
			currencyutils.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string
)

// ParserOptions builds the parser options from the loaded configuration.
func ParserOptions() baparser.Options {
	if Cfg == nil {
		return baparser.Options{}
	}
	return baparser.Options{
		BankID:  Cfg.Bank.ID,
		Charset: Cfg.Bank.Charset,
	}
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
