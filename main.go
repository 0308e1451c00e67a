package main

import "github.com/notargets/dihedral/cmd"

func main() {
	cmd.Execute()
}
