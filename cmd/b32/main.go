package main

import (
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const errGeneric = 99

// general holds the options shared by every subcommand.
var general struct {
	Verbose []bool `short:"v" long:"verbose" env:"B32_VERBOSITY" description:"Show verbose debug information"`
}

func newParser() *flags.Parser {
	parser := flags.NewNamedParser(path.Base(os.Args[0]), flags.HelpFlag|flags.PrintErrors)

	if _, err := parser.AddGroup("General", "General options", &general); err != nil {
		exitOnError(errors.WithStack(err))
	}

	if _, err := parser.AddCommand(
		"encode",
		"Encode inputs",
		"Encode the raw bytes of each input and write one encoded line per input",
		&EncodeCommand{},
	); err != nil {
		exitOnError(errors.WithStack(err))
	}

	if _, err := parser.AddCommand(
		"decode",
		"Decode inputs",
		"Decode the text of each input and write the raw bytes out",
		&DecodeCommand{},
	); err != nil {
		exitOnError(errors.WithStack(err))
	}

	if _, err := parser.AddCommand(
		"version",
		"Print the version",
		"Print build metadata and exit",
		&VersionCommand{},
	); err != nil {
		exitOnError(errors.WithStack(err))
	}

	return parser
}

// setVerbosity maps repeated -v flags onto logrus levels, warnings by
// default.
func setVerbosity(v []bool) {
	level := log.WarnLevel + log.Level(len(v))
	if level > log.TraceLevel {
		level = log.TraceLevel
	}
	log.SetLevel(level)
}

// exitOnError exits with the code a flags.Error carries in its type;
// anything else exits with a generic code. Help output exits clean.
func exitOnError(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}

		log.WithError(err).Log(log.FatalLevel, "command failed")
		log.Exit(int(flagsError.Type))
	}

	log.WithError(err).Log(log.FatalLevel, "command failed")
	log.Exit(errGeneric)
}

func main() {
	log.SetOutput(os.Stderr)

	_, err := newParser().Parse()
	exitOnError(err)
}
