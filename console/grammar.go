package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moffa90/go-fpgareg/protocol"
)

// MinTokens is the shortest line that can name a command and an address.
const MinTokens = 3

// ErrIncomplete is returned for lines with fewer than MinTokens tokens.
var ErrIncomplete = errors.New("console: too few tokens")

// phraseRule widens the command phrase to three words when the second and
// third tokens match and an address token follows.
type phraseRule struct {
	second []string
	third  string
}

const (
	shortPhrase = 2
	longPhrase  = 3
)

// grammar is checked in order; the first matching rule wins. Lines that match
// none use a two-word phrase.
var grammar = []phraseRule{
	{second: []string{"FULL"}, third: "WORD"},
	{second: []string{"LOW", "HIGH"}, third: "NIBBLE"},
}

func (r phraseRule) matches(tokens []string) bool {
	if len(tokens) <= longPhrase {
		return false
	}
	if tokens[2] != r.third {
		return false
	}
	for _, s := range r.second {
		if tokens[1] == s {
			return true
		}
	}
	return false
}

// Invocation is one parsed command line.
type Invocation struct {
	// Command is the resolved table entry
	Command protocol.Command

	// Address is the register address
	Address byte

	// Data is the value to write; meaningful only when HasData is set
	Data byte

	// HasData is true when a write line supplied a data token
	HasData bool
}

// Frame builds the wire frame for the invocation.
func (inv Invocation) Frame() (protocol.Frame, error) {
	if inv.HasData {
		return protocol.BuildWriteFrame(inv.Command, inv.Address, inv.Data)
	}
	return protocol.BuildFrame(inv.Command, inv.Address)
}

// Tokenize uppercases line and splits it on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToUpper(line))
}

// ParseLine resolves a command line to an Invocation.
//
// The phrase is three words for "<verb> FULL WORD" and "<verb> LOW|HIGH
// NIBBLE" when an address follows, otherwise two words. The address is the
// token after the phrase; for writes, the token after that is the data value.
// Further tokens are ignored.
//
// Errors: ErrIncomplete for short lines, protocol.ErrUnknownCommand when the
// phrase names no command, *protocol.ParseError for a bad literal. A write
// with no data token is not an error here; see WithStrictWrites.
func ParseLine(line string) (Invocation, error) {
	tokens := Tokenize(line)
	if len(tokens) < MinTokens {
		return Invocation{}, ErrIncomplete
	}

	width := shortPhrase
	for _, rule := range grammar {
		if rule.matches(tokens) {
			width = longPhrase
			break
		}
	}

	cmd, err := protocol.LookupName(strings.Join(tokens[:width], " "))
	if err != nil {
		return Invocation{}, err
	}

	addr, err := protocol.ToByte(tokens[width])
	if err != nil {
		return Invocation{}, fmt.Errorf("address: %w", err)
	}

	inv := Invocation{Command: cmd, Address: addr}
	if cmd.IsRead() || len(tokens) <= width+1 {
		return inv, nil
	}

	data, err := protocol.ToByte(tokens[width+1])
	if err != nil {
		return Invocation{}, fmt.Errorf("data: %w", err)
	}
	inv.Data = data
	inv.HasData = true
	return inv, nil
}
