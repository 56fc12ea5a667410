package main

import "github.com/gostructural/gohss/cmd"

func main() {
	cmd.Execute()
}
