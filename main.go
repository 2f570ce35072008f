package main

import "github.com/peter-clark/polyphonic-rhythmic-contour/cmd"

func main() {
	cmd.Execute()
}
