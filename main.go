package main

import "github.com/alexiusacademia/goclt/cmd"

func main() {
	cmd.Execute()
}
