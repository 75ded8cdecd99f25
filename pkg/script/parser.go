// Package script parses and replays gesture scripts: plain-text
// sequences of pointer gestures and editing commands applied to a
// schematic through the editor, exactly as interactive input would be.
package script

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser represents a gesture script parser
type Parser struct {
	parser *participle.Parser[Script]
}

// NewParser creates a new gesture script parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader; name is used in error positions
func (p *Parser) Parse(name string, r io.Reader) (*Script, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return p.ParseString(name, string(src))
}

// ParseString parses a script from a string
func (p *Parser) ParseString(name, src string) (*Script, error) {
	// every statement is terminated by a newline
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	s, err := p.parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return s, nil
}

// ParseFile parses a script from a file path
func (p *Parser) ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

// splitProp splits a key=value token, unquoting a quoted value.
func splitProp(tok string) (key, value string, err error) {
	key, value, _ = strings.Cut(tok, "=")
	if strings.HasPrefix(value, `"`) {
		value, err = strconv.Unquote(value)
		if err != nil {
			return "", "", fmt.Errorf("bad quoted value for %s: %w", key, err)
		}
	}
	return key, value, nil
}
