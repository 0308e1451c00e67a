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
	"github.com/spf13/cobra"

	"github.com/notargets/dihedral/InputParameters"
	"github.com/notargets/dihedral/dihedral"
	"github.com/notargets/dihedral/utils"
)

// NormalizeCmd represents the normalize command
var NormalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Check the Jacobian of x/|x| at a fixed point",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("normalize")
	},
}

func init() {
	rootCmd.AddCommand(NormalizeCmd)
}

func checkNormalize(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error) {
	return c.Normalize(utils.NewVec(cp.NormalizePoint), cp.NormalizeStep, cp.NormalizeTol)
}
