package main

import "github.com/SzerokiGeralt/MemeSwipe/cmd"

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.Execute(version, commit)
}
