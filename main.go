package main

import (
	"os"

	"github.com/Ajinkya236/skillsprint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
