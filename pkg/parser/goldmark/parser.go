// Package goldmark parses Markdown into mdast trees with goldmark.
package goldmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/spellint/pkg/mdast"
)

// Supported flavors.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

var (
	// ErrInvalidEncoding rejects content that is not UTF-8.
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")

	// ErrMalformed reports a goldmark failure while building the tree.
	ErrMalformed = errors.New("markdown could not be parsed")
)

// Parser turns Markdown into positioned mdast trees. It is safe for
// concurrent use: goldmark parsers keep no per-document state.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New returns a parser for flavor. Unknown flavors fall back to CommonMark.
func New(flavor string) *Parser {
	if flavor != FlavorGFM {
		flavor = FlavorCommonMark
	}
	return &Parser{flavor: flavor, md: newGoldmarkInstance(flavor)}
}

// Flavor reports the flavor in effect.
func (p *Parser) Flavor() string { return p.flavor }

// Parse builds a snapshot of content whose nodes carry byte ranges and a
// back-reference to the snapshot. The snapshot owns a copy of content.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (snap *mdast.FileSnapshot, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	defer func() {
		if r := recover(); r != nil {
			snap, err = nil, fmt.Errorf("%s: %w: %v", path, ErrMalformed, r)
		}
	}()

	snap = mdast.NewFileSnapshot(path, bytes.Clone(content))
	doc := p.md.Parser().Parse(text.NewReader(snap.Content), parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	snap.Root = newMapper(snap.Content).mapDocument(doc)
	mdast.SetFile(snap.Root, snap)
	return snap, nil
}

// newGoldmarkInstance enables the GFM extensions (tables, strikethrough,
// autolinks, task lists) for the gfm flavor only.
//
//nolint:ireturn // goldmark.Markdown is an interface
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	if flavor == FlavorGFM {
		return goldmark.New(goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New()
}
