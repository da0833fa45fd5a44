package main

import (
	"errors"
	"flag"
	"log"
	"os"
)

func run(args []string) error {
	cfg, err := ParseConfig(args, os.Stderr)
	if err != nil {
		return err
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	sheet, err := loadSheet(cfg)
	if err != nil {
		return err
	}
	app, err := CreateApp(cfg, sheet)
	if err != nil {
		return err
	}
	return WithGL(app.windowSize, app)
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v\n", err)
	}
}
