package main

import "github.com/haulhub/tripops/internal/cmd"

func main() {
	cmd.Execute()
}
