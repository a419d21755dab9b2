// Package getopt describes GNU-style long command-line options.
//
// A LongOpt is the Go counterpart of getopt_long's struct option: a name, an
// argument policy, an optional caller-owned flag slot and a value. Option
// parsing itself is left to the caller; this package only builds and
// validates the descriptors.
package getopt

import (
	"embed"
	"errors"

	"github.com/Jklawreszuk/gettext-net/internal/msgbundle"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

var messages = mustLoadMessages()

func mustLoadMessages() *msgbundle.Bundle {
	b, err := msgbundle.Load(messageFiles, "messages")
	if err != nil {
		panic("getopt: " + err.Error())
	}
	return b
}

// ErrInvalidArgument is matched by every error NewLongOpt returns.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a rejected long option definition. Its message
// is rendered in the language selected by the Config used for construction.
type InvalidArgumentError struct {
	Name   string
	HasArg ArgPolicy
	Lang   string
	msg    string
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Config selects the language of diagnostics. It never changes how options
// are validated.
type Config struct {
	// StrictPOSIX forces diagnostics into the default language (en).
	StrictPOSIX bool
	// Language is a BCP 47 tag or POSIX locale used when StrictPOSIX is off.
	Language string
}

// DefaultConfig is the configuration used when none is available.
func DefaultConfig() *Config {
	return &Config{StrictPOSIX: true}
}

// MessageLanguage returns the language diagnostics are rendered in. A nil
// Config is treated as strict mode.
func (c *Config) MessageLanguage() string {
	if c == nil || c.StrictPOSIX {
		return msgbundle.DefaultLanguage
	}
	return messages.Match(c.Language)
}

// LongOpt is an immutable long option descriptor.
type LongOpt struct {
	name   string
	hasArg ArgPolicy
	flag   *int
	val    int
}

// NewLongOpt validates and builds a long option descriptor.
//
// flag is borrowed: when non-nil, a parser stores val into it on a match and
// returns 0; when nil, a parser returns val, usually the equivalent short
// option character. The descriptor itself never writes through flag.
func NewLongOpt(name string, hasArg ArgPolicy, flag *int, val int, cfg *Config) (*LongOpt, error) {
	lang := cfg.MessageLanguage()
	if name == "" {
		return nil, &InvalidArgumentError{
			HasArg: hasArg,
			Lang:   lang,
			msg:    messages.Get(lang, "empty_name", nil),
		}
	}
	if !hasArg.Valid() {
		return nil, &InvalidArgumentError{
			Name:   name,
			HasArg: hasArg,
			Lang:   lang,
			msg:    messages.Get(lang, "invalid_has_arg", msgbundle.Params{"value": int(hasArg), "name": name}),
		}
	}
	return &LongOpt{name: name, hasArg: hasArg, flag: flag, val: val}, nil
}

// Name returns the option name without the leading dashes.
func (o *LongOpt) Name() string { return o.name }

// HasArg returns the argument policy.
func (o *LongOpt) HasArg() ArgPolicy { return o.hasArg }

// Flag returns the caller-owned flag slot, or nil.
func (o *LongOpt) Flag() *int { return o.flag }

// Val returns the value stored into Flag, or returned by the parser when
// Flag is nil.
func (o *LongOpt) Val() int { return o.val }
