package main

import "github.com/spikelab/dendrite/cmd/dendrite/cmd"

func main() {
	cmd.Execute()
}
