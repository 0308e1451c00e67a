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

// HingeCmd represents the hinge command
var HingeCmd = &cobra.Command{
	Use:   "hinge",
	Short: "Check the gradient of θ with respect to all four vertices of random hinges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("hinge")
	},
}

func init() {
	rootCmd.AddCommand(HingeCmd)
}

func checkHinges(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error) {
	return c.Hinges(cp.HingeSamples, cp.VertexStep, cp.VertexTolerance, cp.GetConditioning())
}
