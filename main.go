package main

import "github.com/KaramelBytes/reelstats/cmd"

func main() {
	cmd.Execute()
}
