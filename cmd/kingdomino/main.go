package main

import (
	"flag"
	"log"
	"os"

	"kingdomino/internal/cli"
)

func main() {
	var opts cli.Options
	flag.StringVar(&opts.BoardFile, "board", "", "Board JSON file to score")
	flag.StringVar(&opts.Sample, "sample", "", "Embedded sample board to score")
	flag.BoolVar(&opts.Random, "random", false, "Score a randomly generated kingdom")
	flag.IntVar(&opts.Size, "size", 0, "Random kingdom size (default from config)")
	flag.Int64Var(&opts.Seed, "seed", 0, "Random seed (0 = clock)")
	flag.BoolVar(&opts.List, "list", false, "List sample boards")
	flag.BoolVar(&opts.History, "history", false, "Show recorded scores")
	flag.StringVar(&opts.Player, "player", "", "Player name for recorded scores")
	flag.StringVar(&opts.DBPath, "db", "", "Score ledger path")
	flag.BoolVar(&opts.Record, "record", false, "Record the score in the ledger")
	flag.BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	flag.BoolVar(&opts.Show, "show", false, "Print the board and its regions")
	flag.BoolVar(&opts.Copy, "copy", false, "Copy the score summary to the clipboard")
	flag.StringVar(&opts.QRPath, "qr", "", "Write the score summary as a QR code PNG")
	configPath := flag.String("config", "", "Config file (default in user config dir)")
	saveConfig := flag.Bool("save-config", false, "Save -player and -db as defaults")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("kingdomino: ")

	if *configPath != "" {
		cli.SetConfigPath(*configPath)
	}
	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
	}

	// Environment overrides config, flags override both
	if envDB := os.Getenv("KINGDOMINO_DB"); envDB != "" {
		cfg.DBPath = envDB
	}
	if envPlayer := os.Getenv("KINGDOMINO_PLAYER"); envPlayer != "" {
		cfg.PlayerName = envPlayer
	}

	if *saveConfig {
		if opts.Player != "" {
			cfg.PlayerName = opts.Player
		}
		if opts.DBPath != "" {
			cfg.DBPath = opts.DBPath
		}
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("Saved config")

		if opts.BoardFile == "" && opts.Sample == "" && !opts.Random && !opts.List && !opts.History {
			return
		}
	}

	if err := cli.Run(opts, cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
