package main

import "github.com/brogergvhs/pokenames/cmd"

func main() {
	cmd.Execute()
}
