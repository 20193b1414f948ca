package main

import (
	"errors"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/lanota/internal/config"
	"git.lost.host/meutraa/lanota/internal/render"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

func run(args []string) error {
	file, err := config.Load(os.Getenv(config.EnvFile))
	if nil != err {
		return err
	}
	opts, err := config.Parse(args, file)
	if nil != err {
		return err
	}

	log.SetPrefix("lanota: ")
	if !opts.Verbose {
		log.SetOutput(io.Discard)
	}

	tty := render.IsTerminal(os.Stdout)
	if opts.Command == config.CommandPad && !tty {
		return errors.New("the pad needs a terminal, use the rating, score or tolerance commands")
	}

	p := &Program{}
	if err := p.Init(opts, os.Stdout, themeMode(opts.Color, tty)); nil != err {
		return err
	}
	return p.Run()
}
