package main

import "comicvault/cmd"

var Version = "develop"

func main() {
	cmd.Execute(Version)
}
