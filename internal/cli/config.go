package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbsa71/nocomments/internal/config"
	"github.com/lbsa71/nocomments/internal/rules"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nocomments configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter project configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		path, err := config.Init(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Config file created at %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective rule set",
	Long: "Show resolves the project file, environment, and flags into the rule set a\n" +
		"check run would use, and prints it as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		cfg, err := config.Load(dir)
		if err != nil {
			return err
		}

		rs := rules.Resolve(cfg.Settings("", buildOverrides()))
		data, err := json.MarshalIndent(struct {
			Source  string        `json:"source,omitempty"`
			RuleSet rules.RuleSet `json:"ruleSet"`
		}{Source: cfg.Path, RuleSet: rs}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func init() {
	addRuleFlags(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
