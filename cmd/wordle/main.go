// Command wordle plays a game in the terminal.
//
//	wordle [-words path|url] [-daily] [-no-color]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	source := flag.String("words", os.Getenv("WORDS_SOURCE"), "word list path or URL (default: embedded list)")
	dailyMode := flag.Bool("daily", false, "play the word of the day")
	salt := flag.String("salt", "local_dev_salt", "salt for -daily word selection")
	noColor := flag.Bool("no-color", false, "disable colored tiles")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	list, _ := words.LoadOrFallback(ctx, *source)
	cancel()

	var (
		st  game.State
		err error
	)
	if *dailyMode {
		st, err = game.StartWithPicker(list, daily.Picker(time.Now(), *salt))
	} else {
		st, err = game.Start(list)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start game")
	}

	if *noColor || os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
	if _, err := play(os.Stdin, os.Stdout, st, newTiles(color.NoColor)); err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
}
