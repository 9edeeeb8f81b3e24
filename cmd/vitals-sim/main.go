package main

import "github.com/oshokin/vitals-sim/cmd/vitals-sim/cmd"

func main() {
	cmd.Execute()
}
