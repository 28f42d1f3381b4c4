/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	log      = logrus.New()
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fvtool",
	Short: "Structured finite volume meshes and face interpolation",
	Long: `
Builds ghost-padded structured meshes in 1, 2 or 3 dimensions and
interpolates cell centered fields to the cell faces,

fvtool mesh -n 20,10 -l 2,1
fvtool faces -n 3 -v 10,20,30`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var level logrus.Level
		if level, err = logrus.ParseLevel(viper.GetString("log-level")); err != nil {
			return
		}
		log.SetLevel(level)
		switch mode := viper.GetString("profile"); mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown profile mode %q, must be cpu or mem", mode)
		}
		return
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// execute runs the root command and stops any profile it started. Cobra
// skips PersistentPostRun when RunE fails.
func execute() error {
	defer stopProfiler()
	return rootCmd.Execute()
}

func stopProfiler() {
	if profiler == nil {
		return
	}
	profiler.Stop()
	profiler = nil
	log.Info("profile written to current directory")
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fvtool.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("profile", "", "write a pprof profile: cpu or mem")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".fvtool" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".fvtool")
	}
	viper.SetEnvPrefix("FVTOOL")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}
}
