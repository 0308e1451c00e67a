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
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/dihedral/InputParameters"
	"github.com/notargets/dihedral/dihedral"
	"github.com/notargets/dihedral/utils"
)

// BendingCmd represents the bending command
var BendingCmd = &cobra.Command{
	Use:   "bending",
	Short: "Check the bending force of the fixed hinge with v3 displaced",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("bending")
	},
}

func init() {
	rootCmd.AddCommand(BendingCmd)
}

func checkBending(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error) {
	var (
		rest     = cp.Hinge()
		deformed = cp.Hinge()
	)
	deformed.V[3] = r3.Add(deformed.V[3], utils.NewVec(cp.Deformation))
	return c.Bending(rest, deformed, cp.Stiffness, cp.BendingStep, cp.BendingTolerance)
}
