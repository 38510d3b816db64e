package command

// root.go defines the root command for the animehub CLI.
// set up the global flags and configuration here.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"animehub/cmd/cli/command/client"
)

const (
	keyAPIURL    = "api_url"
	keyVisitorID = "visitor_id"

	defaultAPIURL  = "http://localhost:8080"
	requestTimeout = 15 * time.Second
)

var cfgFile string // config file path, defaults to ~/.animehub/config.yaml

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animehub",
	Short: "animehub - browse, watch and manage the AnimeHub catalog",
	Long: `animehub talks to the AnimeHub API. Visitors can:
- Browse the catalog with genre, rating and text filters
- Open an anime, rate it and leave comments
Administrators can log in to add anime and moderate genres and comments.

Use "animehub [command] --help" to see all available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.animehub/config.yaml)")
	rootCmd.PersistentFlags().String("api", defaultAPIURL, "API server URL")
	_ = viper.BindPFlag(keyAPIURL, rootCmd.PersistentFlags().Lookup("api"))

	rootCmd.AddCommand(catalogCmd, watchCmd, adminCmd)
}

// initConfig reads the config file and ANIMEHUB_* environment overrides.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigFile(defaultConfigPath())
	}
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("ANIMEHUB")
	viper.AutomaticEnv()
	viper.SetDefault(keyAPIURL, defaultAPIURL)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			color.Yellow("warning: cannot read config: %v", err)
		}
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".animehub", "config.yaml")
	}
	return filepath.Join(home, ".animehub", "config.yaml")
}

func apiURL() string {
	return viper.GetString(keyAPIURL)
}

// publicClient builds a client that carries the persisted visitor id.
func publicClient() *client.PublicClient {
	return client.NewPublicClient(apiURL(), viper.GetString(keyVisitorID))
}

// rememberVisitor persists the visitor id the server assigned so ratings stay tied to this machine.
func rememberVisitor(c *client.PublicClient) {
	id := c.VisitorID()
	if id == "" || id == viper.GetString(keyVisitorID) {
		return
	}
	viper.Set(keyVisitorID, id)
	if err := writeConfig(); err != nil {
		color.Yellow("warning: cannot save visitor id: %v", err)
	}
}

func writeConfig() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = defaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return viper.WriteConfigAs(path)
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, requestTimeout)
}

func success(cmd *cobra.Command, format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", args...)
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s ID: %q", what, arg)
	}
	return id, nil
}
