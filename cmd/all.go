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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/dihedral/InputParameters"
	"github.com/notargets/dihedral/dihedral"
	"github.com/notargets/dihedral/utils"
)

type checkFunc func(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error)

// Checks run by "all", in order
var (
	checkOrder = []string{"atan2", "normalize", "angle", "vertex", "hinge", "bending"}
	checks     = map[string]checkFunc{
		"atan2":     checkAtan2,
		"normalize": checkNormalize,
		"angle":     checkAngleInputs,
		"vertex":    checkVertex,
		"hinge":     checkHinges,
		"bending":   checkBending,
	}
)

// AllCmd represents the all command
var AllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every derivative check",
	Long: `
Runs the atan2, normalization, angle input, vertex, random hinge and bending
checks in order and stops at the first mismatch,

dihedral all -I checks.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(checkOrder...)
	},
}

func init() {
	rootCmd.AddCommand(AllCmd)
}

func runChecks(names ...string) (err error) {
	var (
		cp *InputParameters.CheckParameters
		r  dihedral.Report
	)
	if cp, err = processInput(); err != nil {
		return
	}
	if !viper.GetBool("quiet") {
		cp.Print()
	}
	c := newChecker(cp)
	for _, name := range names {
		check, ok := checks[name]
		if !ok {
			panic(fmt.Errorf("unknown check %q", name))
		}
		if r, err = check(c, cp); err != nil {
			return
		}
		fmt.Println(r)
	}
	if !viper.GetBool("quiet") {
		fmt.Println(utils.GetMemUsage())
	}
	return
}
