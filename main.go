package main

import "github.com/quipdev/quip/cmd"

func main() {
	cmd.Execute()
}
