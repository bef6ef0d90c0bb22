package main

import (
	"github.com/spf13/cobra"

	"github.com/swapunits/swapunits/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration values",
	Long: `Show or change configuration values.

Usage:
  swu config                          # Show the effective config
  swu config get base_url             # Get one value
  swu config set out_dir ~/www/swu    # Set and save a value
  swu config path                     # Show the config file path

Every key can also be set through an SWU_-prefixed environment variable
(for example SWU_BASE_URL) or a .env file in the working directory.`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get one configuration value",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the config file",
	Args:  cobra.ExactArgs(2),
	Run:   runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	Run:   runConfigPath,
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	values := make(map[string]string, len(config.Keys))
	for _, key := range config.Keys {
		v, _ := cfg.Get(key)
		values[key] = v
	}
	if humanOutput {
		for _, key := range config.Keys {
			outputHuman("%-15s %s\n", key+":", values[key])
		}
		return
	}
	outputJSON(values)
}

func runConfigGet(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	v, err := cfg.Get(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if humanOutput {
		outputHuman("%s\n", v)
		return
	}
	outputJSON(map[string]string{args[0]: v})
}

func runConfigSet(cmd *cobra.Command, args []string) {
	key, value := args[0], args[1]
	path := config.GlobalConfigPath()
	if path == "" {
		exitWithError(ExitConfigError, "cannot determine config directory")
	}

	// Environment overrides are not written back.
	cfg, err := config.LoadFile(path)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if err := cfg.Set(key, value); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := cfg.Validate(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err := cfg.Save(path); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}
	config.ResetCache()

	if humanOutput {
		outputHuman("Set %s = %s\n", key, value)
		return
	}
	outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}

func runConfigPath(cmd *cobra.Command, args []string) {
	path := config.GlobalConfigPath()
	if humanOutput {
		outputHuman("%s\n", path)
		return
	}
	outputJSON(StatusResponse{Status: "ok", Path: path})
}
