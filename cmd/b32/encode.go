package main

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/quintet-io/base32"
)

// EncodeCommand encodes the raw bytes of each input and writes one
// encoded line per input. Inputs that fail are reported and skipped;
// the remaining inputs are still processed.
type EncodeCommand struct {
	Output string `short:"o" long:"output" env:"B32_OUTPUT" default:"-" description:"Write to FILE instead of stdout" value-name:"FILE"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to encode, - for stdin; stdin when none given"`
	} `positional-args:"yes"`
}

func (c *EncodeCommand) String() string {
	return "Encode inputs"
}

func (c *EncodeCommand) Execute(args []string) error {
	setVerbosity(general.Verbose)

	out, closeOut, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	var errs error
	for _, name := range inputNames(c.Args.Files) {
		if err := c.encodeOne(out, name); err != nil {
			log.WithField("input", displayName(name)).WithError(err).Error("encode failed")
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *EncodeCommand) encodeOne(out io.Writer, name string) error {
	src, err := readInput(name)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"input": displayName(name), "bytes": len(src)}).Debug("encoding")

	enc, err := base32.Encode(src)
	if err != nil {
		return errors.Wrapf(err, "encode %s", displayName(name))
	}

	if _, err := out.Write(append(enc, '\n')); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
