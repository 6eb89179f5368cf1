// Package main runs the kingdom turn and economy CLI.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	kingdomcmd "github.com/louisbranch/stolenlands.quest/internal/cmd/kingdom"
)

func main() {
	cfg, args, err := kingdomcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[KINGDOM] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := kingdomcmd.Run(ctx, cfg, args); err != nil {
		log.Fatalf("kingdom command failed: %v", err)
	}
}
