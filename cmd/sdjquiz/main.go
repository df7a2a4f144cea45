package main

import (
	"os"
	"os/signal"
	"syscall"

	"sdjquiz/internal/cli"
)

// exitInterrupted is the conventional status for termination by SIGINT.
const exitInterrupted = 130

func main() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		os.Exit(exitInterrupted)
	}()

	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
