package main

import (
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/quintet-io/base32"
)

// DecodeCommand decodes the text of each input and writes the raw
// bytes back to back. Inputs that fail are reported and skipped; the
// remaining inputs are still processed.
type DecodeCommand struct {
	Output string `short:"o" long:"output" env:"B32_OUTPUT" default:"-" description:"Write to FILE instead of stdout" value-name:"FILE"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to decode, - for stdin; stdin when none given"`
	} `positional-args:"yes"`
}

func (c *DecodeCommand) String() string {
	return "Decode inputs"
}

func (c *DecodeCommand) Execute(args []string) error {
	setVerbosity(general.Verbose)

	out, closeOut, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	var errs error
	for _, name := range inputNames(c.Args.Files) {
		if err := c.decodeOne(out, name); err != nil {
			log.WithField("input", displayName(name)).WithError(err).Error("decode failed")
			errs = multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *DecodeCommand) decodeOne(out io.Writer, name string) error {
	src, err := readInput(name)
	if err != nil {
		return err
	}

	// whitespace after the trailing pads would land in the payload and
	// be rejected
	text := strings.TrimSpace(dropLineBreaks(src))

	dec, err := base32.DecodeString(text)
	if err != nil {
		return errors.Wrapf(err, "decode %s", displayName(name))
	}

	log.WithFields(log.Fields{"input": displayName(name), "bytes": len(dec)}).Debug("decoded")

	if _, err := out.Write(dec); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// dropLineBreaks removes the line structure of encoded text; CR, LF and
// TAB never carry symbols. Interior spaces pass through to the decoder,
// which skips them.
func dropLineBreaks(src []byte) string {
	buf := make([]byte, 0, len(src))
	for _, c := range src {
		switch c {
		case '\r', '\n', '\t':
			continue
		}
		buf = append(buf, c)
	}

	return string(buf)
}
