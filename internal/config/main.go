package config

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

// Commands
const (
	CommandPad       = "pad"
	CommandRating    = "rating"
	CommandScore     = "score"
	CommandTolerance = "tolerance"
)

// FullCombo as MaxCombo means the combo covers every judged note.
const FullCombo = -1

type Options struct {
	Command string
	Format  string
	Color   string
	Verbose bool

	Level string

	// Judgements, either split or as a single "H/T/F"
	Counts    string
	Harmony   int
	Tune      int
	Fail      int
	MaxCombo  int
	NewRecord bool

	Notes  int
	Target string
}

func judgementFlags(cmd *kingpin.CmdClause, o *Options, file File) {
	cmd.Flag("level", "Chart level, 13 or 13+").Short('l').Default(file.Level).StringVar(&o.Level)
	cmd.Flag("counts", "Judgements as harmony/tune/fail").StringVar(&o.Counts)
	cmd.Flag("harmony", "Harmony count").Short('H').Default("0").IntVar(&o.Harmony)
	cmd.Flag("tune", "Tune count").Short('t').Default("0").IntVar(&o.Tune)
	cmd.Flag("fail", "Fail count").Short('f').Default("0").IntVar(&o.Fail)
	cmd.Flag("combo", "Max combo, full combo when omitted").Short('c').Default(fmt.Sprint(FullCombo)).IntVar(&o.MaxCombo)
	cmd.Flag("new-record", "The play set a new record").Short('n').BoolVar(&o.NewRecord)
}

func newApp(o *Options, file File) *kingpin.Application {
	app := kingpin.New("lanota", "Score, rating and tolerance calculator")
	app.Version(Version)
	app.Flag("format", "Output format").Default(file.Format).EnumVar(&o.Format, Formats...)
	app.Flag("color", "Colorize output").Default(file.Color).EnumVar(&o.Color, ColorModes...)
	app.Flag("verbose", "Log diagnostics to stderr").Short('v').BoolVar(&o.Verbose)

	app.Command(CommandPad, "Interactive number pad").Default()

	judgementFlags(app.Command(CommandRating, "Rating of a play"), o, file)
	judgementFlags(app.Command(CommandScore, "Score and rating of a play"), o, file)

	tolerance := app.Command(CommandTolerance, "Tunes a full combo can absorb for a target score")
	tolerance.Flag("level", "Chart level, 13 or 13+").Short('l').Default(file.Level).StringVar(&o.Level)
	tolerance.Flag("notes", "Total notes in the chart").Short('N').Required().IntVar(&o.Notes)
	tolerance.Flag("target", "Target score").Short('T').Default(fmt.Sprint(maxTarget)).StringVar(&o.Target)

	return app
}

// Parse reads command line arguments, using file for every default it covers.
func Parse(args []string, file File) (*Options, error) {
	o := &Options{}
	command, err := newApp(o, file).Parse(args)
	if nil != err {
		return nil, err
	}
	o.Command = command

	if o.Harmony < 0 || o.Tune < 0 || o.Fail < 0 {
		return nil, fmt.Errorf("invalid counts: judgement counts cannot be negative")
	}
	if o.Notes < 0 {
		return nil, fmt.Errorf("invalid notes: %d", o.Notes)
	}
	if o.Command != CommandPad && o.Level == "" {
		return nil, fmt.Errorf("a chart --level is required for %s", o.Command)
	}
	return o, nil
}
