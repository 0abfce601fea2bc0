package document

import (
	"sort"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"mangrove/internal/lexer"
)

// ErrInvalidRange is returned for edits whose start lies after their end.
var ErrInvalidRange = errors.Base("invalid edit range")

// TextDocument holds the content of one open document and maps between
// zero-based line/character positions and absolute offsets. Characters and
// offsets are counted in UTF-16 code units, as the language server protocol
// requires.
type TextDocument struct {
	uri        string
	languageID string
	version    int32
	content    string

	// per line: byte offset of its first byte, UTF-16 offset of its first
	// unit, and UTF-16 length excluding the line terminator.
	lineBytes  []int
	lineUnits  []int
	lineWidths []int
	totalUnits int
}

func New(uri, languageID string, version int32, content string) *TextDocument {
	d := &TextDocument{
		uri:        uri,
		languageID: languageID,
		version:    version,
	}
	d.setContent(content)
	return d
}

func (d *TextDocument) URI() string        { return d.uri }
func (d *TextDocument) LanguageID() string { return d.languageID }
func (d *TextDocument) Version() int32     { return d.version }
func (d *TextDocument) Text() string       { return d.content }
func (d *TextDocument) LineCount() int     { return len(d.lineBytes) }

// OffsetAt converts a position to an absolute UTF-16 offset. Lines before the
// document clamp to 0, lines past the end clamp to the document length, and
// characters clamp to the line's content.
func (d *TextDocument) OffsetAt(pos lexer.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineUnits) {
		return d.totalUnits
	}

	character := pos.Character
	if character < 0 {
		character = 0
	}
	if character > d.lineWidths[pos.Line] {
		return d.lineEndUnits(pos.Line)
	}
	return d.lineUnits[pos.Line] + character
}

// PositionAt is the inverse of OffsetAt.
func (d *TextDocument) PositionAt(offset int) lexer.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > d.totalUnits {
		offset = d.totalUnits
	}

	line := sort.Search(len(d.lineUnits), func(i int) bool { return d.lineUnits[i] > offset }) - 1
	character := offset - d.lineUnits[line]
	if character > d.lineWidths[line] {
		character = d.lineWidths[line]
	}
	return lexer.Position{Line: line, Character: character}
}

// Replace swaps the whole content, as for a full-sync change notification.
func (d *TextDocument) Replace(content string, version int32) {
	d.setContent(content)
	d.version = version
}

// ApplyChange replaces the text covered by rng with text.
func (d *TextDocument) ApplyChange(rng lexer.Range, text string, version int32) error {
	if rng.End.Before(rng.Start) {
		return errors.Errorf("%w: %d:%d-%d:%d", ErrInvalidRange,
			rng.Start.Line, rng.Start.Character, rng.End.Line, rng.End.Character)
	}

	start := d.byteOffsetAt(rng.Start)
	end := d.byteOffsetAt(rng.End)

	var b strings.Builder
	b.Grow(len(d.content) - (end - start) + len(text))
	b.WriteString(d.content[:start])
	b.WriteString(text)
	b.WriteString(d.content[end:])

	d.setContent(b.String())
	d.version = version
	return nil
}

// lineEndUnits is the UTF-16 offset just past the line's content, before the
// line terminator.
func (d *TextDocument) lineEndUnits(line int) int {
	return d.lineUnits[line] + d.lineWidths[line]
}

func (d *TextDocument) byteOffsetAt(pos lexer.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineBytes) {
		return len(d.content)
	}

	offset := d.lineBytes[pos.Line]
	for units := 0; units < pos.Character && offset < len(d.content); {
		r, size := utf8.DecodeRuneInString(d.content[offset:])
		if r == '\n' || r == '\r' {
			break
		}
		units += runeUnits(r)
		offset += size
	}
	return offset
}

func (d *TextDocument) setContent(content string) {
	d.content = content
	d.lineBytes = d.lineBytes[:0]
	d.lineUnits = d.lineUnits[:0]
	d.lineWidths = d.lineWidths[:0]

	d.lineBytes = append(d.lineBytes, 0)
	d.lineUnits = append(d.lineUnits, 0)

	units, width := 0, 0
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		i += size
		units += runeUnits(r)

		switch r {
		case '\r':
			if i < len(content) && content[i] == '\n' {
				i++
				units++
			}
			fallthrough
		case '\n':
			d.lineWidths = append(d.lineWidths, width)
			d.lineBytes = append(d.lineBytes, i)
			d.lineUnits = append(d.lineUnits, units)
			width = 0
		default:
			width += runeUnits(r)
		}
	}
	d.lineWidths = append(d.lineWidths, width)
	d.totalUnits = units
}

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
