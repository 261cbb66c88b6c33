// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ddate CLI, a Discordian
// calendar companion to the util-linux tool of the same name.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ddate/internal/civil"
	"github.com/pdiddy/ddate/pkg/discordian"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. With no arguments it prints today's
// Discordian date; with one argument it converts that civil date.
var rootCmd = &cobra.Command{
	Use:   "ddate [date]",
	Short: "Print the Discordian date",
	Long: `ddate converts civil calendar dates to the Discordian calendar.

With no arguments it prints today's date. With a single argument it
parses that argument as a civil date (ISO 2006-01-02 and a few common
forms) and prints its Discordian equivalent. The convert subcommand
handles multiple dates, JSON output, and YAML batch files.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Printf("Today is %s\n", render(civil.Today()))
			return nil
		}
		t, err := civil.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s is %s\n", t.Format(civil.DateFmt), render(t))
		return nil
	},
}

// render formats a civil date as a Discordian date string, appending
// the holyday line when the holydays setting is on.
func render(t time.Time) string {
	d := discordian.FromDate(t)
	s := d.String()
	if viper.GetBool("holydays") {
		if h, ok := d.Holyday(); ok {
			s += "\nCelebrate " + h
		}
	}
	return s
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ddate.yaml or ~/.config/ddate/config.yaml)")
	rootCmd.PersistentFlags().Bool("holydays", false, "announce apostle and season holydays")
	_ = viper.BindPFlag("holydays", rootCmd.PersistentFlags().Lookup("holydays"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ddate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ddate"))
		}
	}

	viper.SetEnvPrefix("DDATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
