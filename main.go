package main

import "github.com/digcul/surveyscope/cmd"

func main() {
	cmd.Execute()
}
