package main

import "github.com/DrSkyle/spectra/cmd/spectra/commands"

func main() {
	commands.Execute()
}
