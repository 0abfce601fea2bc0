package lsp_test

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mangrove/internal/diagnostics"
	"mangrove/internal/lexer"
	"mangrove/internal/lsp"
)

const testURI = "file:///work/main.mgv"

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

// recorder captures published diagnostics.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics were published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, handler *lsp.MangroveHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "mangrove",
			Version:    1,
			Text:       text,
		},
	})
	require.NoError(t, err)
}

func change(version protocol.Integer, changes ...any) *protocol.DidChangeTextDocumentParams {
	return &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                version,
		},
		ContentChanges: changes,
	}
}

func TestInitializeAdvertisesLegend(t *testing.T) {
	handler := lsp.NewMangroveHandler(afero.NewMemMapFs(), "test")

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)

	sync, ok := initResult.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	require.NotNil(t, sync.Change)
	assert.Equal(t, protocol.TextDocumentSyncKindIncremental, *sync.Change)

	tokens, ok := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
	assert.Equal(t, lsp.SemanticTokenModifiers, tokens.Legend.TokenModifiers)
	assert.Equal(t, "mangrove", initResult.ServerInfo.Name)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/main.mgv", []byte("int32 a;\nint32 b = a;\nclass P { int8 x; }\nP p;\np.x;\n"), 0o644))

	handler := lsp.NewMangroveHandler(fs, "test")
	rec := &recorder{}

	tokens, err := handler.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 8)

	assertToken(t, &decoded[0], 1, 7, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[1], 2, 7, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[2], 2, 11, 1, "variable", nil)
	assertToken(t, &decoded[3], 3, 7, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[4], 3, 16, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[5], 4, 1, 1, "variable", nil)
	assertToken(t, &decoded[6], 4, 3, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[7], 5, 1, 3, "variable", nil)

	// reading the file publishes its diagnostics too
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	handler := lsp.NewMangroveHandler(afero.NewMemMapFs(), "test")

	_, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	assert.Error(t, err)

	_, err = handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "https://example.com/main.mgv"},
	})
	assert.Error(t, err)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	handler := lsp.NewMangroveHandler(afero.NewMemMapFs(), "test")
	rec := &recorder{}

	open(t, handler, rec.context(), "int32 count;\ncout = 1;\n")

	published := rec.last(t)
	assert.Equal(t, testURI, published.URI)
	require.Len(t, published.Diagnostics, 1)

	d := published.Diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, diagnostics.ErrorUnresolvedReference, d.Code.Value)
	assert.Equal(t, "mangrove", *d.Source)
	assert.Equal(t, protocol.UInteger(1), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(4), d.Range.End.Character)
	assert.Contains(t, d.Message, "count")
}

func TestDidChangeIncremental(t *testing.T) {
	handler := lsp.NewMangroveHandler(afero.NewMemMapFs(), "test")
	rec := &recorder{}

	open(t, handler, rec.context(), "int32 a;\na;\n")
	assert.Empty(t, rec.last(t).Diagnostics)

	// rename the declaration only, leaving the use dangling
	err := handler.TextDocumentDidChange(rec.context(), change(2, protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 0, Character: 6},
			End:   protocol.Position{Line: 0, Character: 7},
		},
		Text: "count",
	}))
	require.NoError(t, err)

	result, ok := handler.Result(testURI)
	require.True(t, ok)
	assert.NotNil(t, result.Root.FindLocal("count"))
	assert.Nil(t, result.Root.FindLocal("a"))
	require.Len(t, rec.last(t).Diagnostics, 1)

	err = handler.TextDocumentDidChange(rec.context(), change(3, protocol.TextDocumentContentChangeEventWhole{
		Text: "int16 a;\na;\n",
	}))
	require.NoError(t, err)

	result, ok = handler.Result(testURI)
	require.True(t, ok)
	assert.NotNil(t, result.Root.FindLocal("a"))
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestDidChangeErrors(t *testing.T) {
	handler := lsp.NewMangroveHandler(afero.NewMemMapFs(), "test")

	err := handler.TextDocumentDidChange(&glsp.Context{}, change(2, protocol.TextDocumentContentChangeEventWhole{Text: ""}))
	assert.Error(t, err, "changes to unopened documents are rejected")

	open(t, handler, &glsp.Context{}, "int32 a;\n")
	err = handler.TextDocumentDidChange(&glsp.Context{}, change(2, protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 0, Character: 4},
			End:   protocol.Position{Line: 0, Character: 2},
		},
		Text: "x",
	}))
	assert.Error(t, err, "inverted ranges are rejected")
}

func TestDidCloseDropsState(t *testing.T) {
	handler := lsp.NewMangroveHandler(afero.NewMemMapFs(), "test")
	open(t, handler, nil, "int32 a;\n")

	_, ok := handler.Result(testURI)
	require.True(t, ok)

	err := handler.TextDocumentDidClose(&glsp.Context{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	_, ok = handler.Result(testURI)
	assert.False(t, ok)
}

func TestConvertDiagnostics(t *testing.T) {
	rng := lexer.Range{
		Start: lexer.Position{Line: 2, Character: 4},
		End:   lexer.Position{Line: 2, Character: 5},
	}
	converted := lsp.ConvertDiagnostics([]diagnostics.Diagnostic{
		diagnostics.ShadowedSymbol("x", rng),
		diagnostics.NewError("", "broken", lexer.Range{
			Start: lexer.NoPosition,
			End:   lexer.NoPosition,
		}).WithNote("context").Build(),
	})
	require.Len(t, converted, 2)

	assert.Equal(t, protocol.DiagnosticSeverityWarning, *converted[0].Severity)
	assert.Equal(t, diagnostics.WarningShadowedSymbol, converted[0].Code.Value)
	assert.Equal(t, protocol.UInteger(2), converted[0].Range.Start.Line)

	assert.Nil(t, converted[1].Code)
	assert.Equal(t, "broken\nnote: context", converted[1].Message)
	assert.Equal(t, protocol.Position{}, converted[1].Range.Start)
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
