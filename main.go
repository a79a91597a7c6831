package main

import "github.com/namesdao/namesdao-cli/cmd"

func main() {
	cmd.Execute()
}
