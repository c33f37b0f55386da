package main

import "github.com/gaurav-prasanna/profilestrap/cmd"

func main() {
	cmd.Execute()
}
