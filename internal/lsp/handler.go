package lsp

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"gitlab.com/tozd/go/errors"

	"mangrove/internal/ast"
	"mangrove/internal/document"
	"mangrove/internal/lexer"
	"mangrove/internal/parser"
)

var log = commonlog.GetLogger("mangrove.lsp")

const serverName = "mangrove"

// The legend advertised to clients is the AST's, so exported token types
// and modifier bits index straight into it.
var (
	SemanticTokenTypes     = ast.SemanticTokenTypes
	SemanticTokenModifiers = ast.SemanticTokenModifiers
)

// MangroveHandler implements the LSP server handlers. Every document is
// parsed with its own parser context; nothing is shared between documents.
type MangroveHandler struct {
	mu        sync.RWMutex
	fs        afero.Fs
	version   string
	documents map[protocol.DocumentUri]*document.TextDocument
	results   map[protocol.DocumentUri]*parser.ParseResult
}

// NewMangroveHandler creates a handler that reads documents the client has
// not opened from fs.
func NewMangroveHandler(fs afero.Fs, version string) *MangroveHandler {
	return &MangroveHandler{
		fs:        fs,
		version:   version,
		documents: make(map[protocol.DocumentUri]*document.TextDocument),
		results:   make(map[protocol.DocumentUri]*parser.ParseResult),
	}
}

// Initialize advertises incremental sync and full-document semantic tokens
func (h *MangroveHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindIncremental),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &h.version,
		},
	}, nil
}

func (h *MangroveHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *MangroveHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *MangroveHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics
func (h *MangroveHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	log.Infof("opened %s", item.URI)

	doc := document.New(item.URI, item.LanguageID, item.Version, item.Text)
	h.publish(ctx, item.URI, h.update(item.URI, doc))
	return nil
}

// TextDocumentDidChange applies full or ranged edits in order, then reparses
// from scratch.
func (h *MangroveHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s (version %d)", uri, params.TextDocument.Version)

	h.mu.Lock()
	doc, ok := h.documents[uri]
	if !ok {
		h.mu.Unlock()
		return errors.Errorf("change for unopened document %s", uri)
	}
	err := applyChanges(doc, params.ContentChanges, params.TextDocument.Version)
	h.mu.Unlock()
	if err != nil {
		return errors.Errorf("failed to apply change to %s: %w", uri, err)
	}

	h.publish(ctx, uri, h.update(uri, doc))
	return nil
}

func applyChanges(doc *document.TextDocument, changes []any, version protocol.Integer) error {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				doc.Replace(c.Text, version)
				continue
			}
			if err := doc.ApplyChange(fromProtocolRange(*c.Range), c.Text, version); err != nil {
				return err
			}
		case protocol.TextDocumentContentChangeEventWhole:
			doc.Replace(c.Text, version)
		default:
			return errors.Errorf("unsupported content change %T", change)
		}
	}
	return nil
}

// TextDocumentDidClose drops all state for the document
func (h *MangroveHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.documents, uri)
	delete(h.results, uri)
	return nil
}

// TextDocumentSemanticTokensFull exports the semantic tokens of every node
// and delta-encodes them.
func (h *MangroveHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI
	log.Debugf("semantic tokens for %s", uri)

	result, err := h.getOrParse(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(result.SemanticTokens()),
	}, nil
}

// Result returns the latest parse of uri, if any.
func (h *MangroveHandler) Result(uri protocol.DocumentUri) (*parser.ParseResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result, ok := h.results[uri]
	return result, ok
}

func (h *MangroveHandler) update(uri protocol.DocumentUri, doc *document.TextDocument) *parser.ParseResult {
	result := parser.Parse(doc)

	h.mu.Lock()
	h.documents[uri] = doc
	h.results[uri] = result
	h.mu.Unlock()

	return result
}

// getOrParse returns the cached parse of an open document, or reads the file
// behind uri and parses it.
func (h *MangroveHandler) getOrParse(ctx *glsp.Context, uri protocol.DocumentUri) (*parser.ParseResult, error) {
	if result, ok := h.Result(uri); ok {
		return result, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	content, err := afero.ReadFile(h.fs, path)
	if err != nil {
		return nil, errors.Errorf("failed to read file %s: %w", path, err)
	}

	result := h.update(uri, document.New(uri, parser.LanguageID, 0, string(content)))
	h.publish(ctx, uri, result)
	return result, nil
}

func (h *MangroveHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, result *parser.ParseResult) {
	sendDiagnosticNotification(ctx, uri, ConvertDiagnostics(result.Diagnostics))
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", errors.Errorf("invalid URI %s: %w", rawURI, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", errors.Errorf("unsupported URI scheme %q in %s", u.Scheme, rawURI)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func fromProtocolRange(r protocol.Range) lexer.Range {
	return lexer.Range{
		Start: lexer.Position{Line: int(r.Start.Line), Character: int(r.Start.Character)},
		End:   lexer.Position{Line: int(r.End.Line), Character: int(r.End.Character)},
	}
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
