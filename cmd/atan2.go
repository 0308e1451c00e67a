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
)

// Atan2Cmd represents the atan2 command
var Atan2Cmd = &cobra.Command{
	Use:   "atan2",
	Short: "Check ∂θ/∂cos and ∂θ/∂sin on random points of the unit circle",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("atan2")
	},
}

func init() {
	rootCmd.AddCommand(Atan2Cmd)
}

func checkAtan2(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error) {
	return c.Atan2(cp.Samples, cp.Atan2Step, cp.Atan2Tolerance, cp.SingularityMargin)
}
