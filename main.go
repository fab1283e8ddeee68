package main

import "github.com/mayazahavi/bash-mini-shell/cmd"

func main() {
	cmd.Execute()
}
