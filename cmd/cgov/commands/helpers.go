package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/pkg/cgclient"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// buildConfig assembles the client configuration from flags, environment
// variables, and the config file via viper.
func buildConfig() *cloudgov.Config {
	config := &cloudgov.Config{
		APIEndpoint: viper.GetString("api-url"),
		APIKey:      viper.GetString("api-key"),
		APISecret:   viper.GetString("api-secret"),
		Org:         viper.GetString("org"),
		Space:       viper.GetString("space"),
		Debug:       viper.GetBool("debug"),
	}

	if config.Debug {
		config.Logger = newStderrLogger()
	}

	return config
}

// createClient builds the API client, prompting for the secret when the key
// is configured, the secret is not, and stdin is a terminal.
func createClient() (cloudgov.Client, error) {
	config := buildConfig()

	if config.APIKey != "" && config.APISecret == "" && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Print("API secret: ")

		byteSecret, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, fmt.Errorf("failed to read secret: %w", err)
		}

		config.APISecret = string(byteSecret)

		fmt.Println()
	}

	client, err := cgclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// openLedger builds the release ledger selected by the flags.
func openLedger(ledgerType, natsURL, natsBucket string) (cloudgov.ReleaseLedger, error) {
	config := &cloudgov.LedgerConfig{
		Type: cloudgov.LedgerType(ledgerType),
	}

	if config.Type == cloudgov.LedgerTypeNATS {
		config.NATS = &cloudgov.NATSLedgerConfig{
			URL:    natsURL,
			Bucket: natsBucket,
		}
	}

	ledger, err := cloudgov.NewLedgerFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("opening release ledger: %w", err)
	}

	return ledger, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// stderrLogger writes client debug output to standard error.
type stderrLogger struct{}

func newStderrLogger() cloudgov.Logger {
	return &stderrLogger{}
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
