package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"mangrove/internal/lexer"
)

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
	Help    Level = "help"
)

// Diagnostic is a language-level problem found in a document. Ranges are
// zero-based, in the same units as lexer positions.
type Diagnostic struct {
	Level       Level
	Code        string
	Message     string
	Range       lexer.Range
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a possible fix, optionally with replacement text for a range.
type Suggestion struct {
	Message     string
	Replacement string
	Range       *lexer.Range
}

func (d Diagnostic) IsError() bool { return d.Level == Error }

func (d Diagnostic) String() string {
	start := d.Range.Start
	if d.Code != "" {
		return fmt.Sprintf("%d:%d: %s[%s]: %s", start.Line+1, start.Character+1, d.Level, d.Code, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", start.Line+1, start.Character+1, d.Level, d.Message)
}

// Builder provides a fluent interface for assembling diagnostics
type Builder struct {
	d Diagnostic
}

func NewError(code, message string, rng lexer.Range) *Builder {
	return &Builder{d: Diagnostic{Level: Error, Code: code, Message: message, Range: rng}}
}

func NewWarning(code, message string, rng lexer.Range) *Builder {
	return &Builder{d: Diagnostic{Level: Warning, Code: code, Message: message, Range: rng}}
}

func (b *Builder) WithSuggestion(message string) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

func (b *Builder) WithReplacement(message, replacement string, rng lexer.Range) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Range:       &rng,
	})
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

func (b *Builder) WithHelp(help string) *Builder {
	b.d.HelpText = help
	return b
}

func (b *Builder) Build() Diagnostic {
	return b.d
}

// UnresolvedReference reports an identifier no scope binds. The closest
// similar names become replacement suggestions.
func UnresolvedReference(name string, rng lexer.Range, similarNames []string) Diagnostic {
	builder := NewError(ErrorUnresolvedReference, fmt.Sprintf("undefined symbol '%s'", name), rng)

	switch len(similarNames) {
	case 0:
		builder = builder.WithSuggestion("make sure the symbol is declared before use").
			WithNote("symbols are visible in the block that declares them and in nested blocks")
	case 1:
		builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similarNames[0]), similarNames[0], rng)
	default:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similarNames, "', '")))
	}

	return builder.Build()
}

// DuplicateSymbol reports a redeclaration inside one scope. previous is the
// range of the first declaration, if known.
func DuplicateSymbol(name string, rng lexer.Range, previous *lexer.Range) Diagnostic {
	builder := NewError(ErrorDuplicateSymbol, fmt.Sprintf("'%s' is already declared in this scope", name), rng).
		WithHelp("rename one of the declarations or move one into a nested block")
	if previous != nil {
		builder = builder.WithNote(fmt.Sprintf("first declared at %d:%d", previous.Start.Line+1, previous.Start.Character+1))
	}
	return builder.Build()
}

func UninitializedType(name string, rng lexer.Range) Diagnostic {
	return NewError(ErrorUninitializedType, fmt.Sprintf("'%s' has no type", name), rng).
		WithSuggestion("declare the symbol with a type before using it").
		Build()
}

func ShadowedSymbol(name string, rng lexer.Range) Diagnostic {
	return NewWarning(WarningShadowedSymbol, fmt.Sprintf("declaration of '%s' shadows an outer declaration", name), rng).
		Build()
}

// UnexpectedToken reports a token the parser cannot use. expected may be
// empty.
func UnexpectedToken(tok *lexer.Token, expected string) Diagnostic {
	found := tok.Type().String()
	if tok.Value() != "" {
		found = fmt.Sprintf("'%s'", tok.Value())
	}
	message := fmt.Sprintf("unexpected %s", found)
	if expected != "" {
		message = fmt.Sprintf("expected %s, found %s", expected, found)
	}
	return NewError(ErrorUnexpectedToken, message, tok.Location()).Build()
}

// FromScanError maps a scanner error onto its diagnostic code.
func FromScanError(err lexer.ScanError) Diagnostic {
	code := ErrorUnexpectedCharacter
	switch err.Kind {
	case lexer.Unterminated:
		code = ErrorUnterminatedLiteral
	case lexer.InvalidLiteral:
		code = ErrorInvalidLiteral
	}
	return NewError(code, err.Message, err.Range).Build()
}

// SimilarNames returns the candidates within edit distance 2 of name, closest
// first. Single-character candidates are never suggested.
func SimilarNames(name string, candidates []string) []string {
	type match struct {
		name     string
		distance int
	}

	var matches []match
	for _, candidate := range candidates {
		if candidate == name || len(candidate) <= 1 {
			continue
		}
		if d := levenshtein.Distance(name, candidate, nil); d <= 2 {
			matches = append(matches, match{candidate, d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].distance < matches[j].distance })

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.name)
	}
	return names
}
