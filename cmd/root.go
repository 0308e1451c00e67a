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
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/dihedral/InputParameters"
	"github.com/notargets/dihedral/dihedral"
)

var (
	cfgFile string
	prof    interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dihedral",
	Short: "Analytic and numerical derivatives of the dihedral angle",
	Long: `
Checks the analytic derivatives of the signed bending angle between two
triangles sharing an edge against forward finite differences,

dihedral all -I checks.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch viper.GetString("profile") {
		case "cpu":
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			prof = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	// a failed check still flushes the profile
	if prof != nil {
		prof.Stop()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dihedral.yaml)")
	rootCmd.PersistentFlags().StringP("inputParametersFile", "I", "", "YAML file for check parameters like:\n\t- Samples\n\t- VertexStep\n\t- Vertices")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only print mismatches and the summary")
	rootCmd.PersistentFlags().Uint64P("seed", "s", 0, "seed for the random samples")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the current directory")
	for _, name := range []string{"inputParametersFile", "quiet", "seed", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
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

		// Search config in home directory with name ".dihedral" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".dihedral")
	}

	viper.SetEnvPrefix("DIHEDRAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// processInput builds the check parameters from the defaults, the input file
// if one is given, and the seed if it was set on the command line, the
// environment or the config file
func processInput() (cp *InputParameters.CheckParameters, err error) {
	var (
		data []byte
	)
	cp = InputParameters.NewCheckParameters()
	if fileName := viper.GetString("inputParametersFile"); len(fileName) != 0 {
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		if err = cp.Parse(data); err != nil {
			err = fmt.Errorf("reading %s: %w", fileName, err)
			return
		}
	}
	// unset flags leave the seed of the input file alone
	if viper.IsSet("seed") {
		cp.Seed = viper.GetUint64("seed")
	}
	return
}

func newChecker(cp *InputParameters.CheckParameters) (c *dihedral.Checker) {
	c = dihedral.NewChecker(os.Stdout, cp.Seed, viper.GetBool("quiet"))
	c.ParallelDegree = cp.ParallelDegree
	return
}
