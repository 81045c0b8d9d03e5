package main

import (
	"fmt"
	"os"

	"mathracer/internal/config"
	"mathracer/internal/screen"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logFile, err := config.SetupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := screen.Run(cfg); err != nil {
		panic(err)
	}
}
