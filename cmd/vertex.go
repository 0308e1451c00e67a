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

// VertexCmd represents the vertex command
var VertexCmd = &cobra.Command{
	Use:   "vertex",
	Short: "Check ∂θ/∂v0 of the fixed hinge, along with ∂θ/∂n0, ∂θ/∂n1 and ∂θ/∂e",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("angle", "vertex")
	},
}

func init() {
	rootCmd.AddCommand(VertexCmd)
}

func checkAngleInputs(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error) {
	return c.AngleInputs(cp.Hinge(), cp.AngleStep, cp.VertexTolerance)
}

func checkVertex(c *dihedral.Checker, cp *InputParameters.CheckParameters) (dihedral.Report, error) {
	return c.Vertex(cp.Hinge(), cp.VertexStep, cp.VertexTolerance)
}
