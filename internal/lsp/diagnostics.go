package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"mangrove/internal/diagnostics"
	"mangrove/internal/lexer"
)

const diagnosticSource = "mangrove"

// ConvertDiagnostics transforms language diagnostics into LSP diagnostics for
// IDE display. Notes, suggestions and help are folded into the message since
// editors show it verbatim.
func ConvertDiagnostics(diags []diagnostics.Diagnostic) []protocol.Diagnostic {
	converted := make([]protocol.Diagnostic, 0, len(diags))

	for _, d := range diags {
		diagnostic := protocol.Diagnostic{
			Range:    toProtocolRange(d.Range),
			Severity: ptrSeverity(severity(d.Level)),
			Source:   ptrString(diagnosticSource),
			Message:  message(d),
		}
		if d.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: d.Code}
		}
		converted = append(converted, diagnostic)
	}

	return converted
}

func severity(level diagnostics.Level) protocol.DiagnosticSeverity {
	switch level {
	case diagnostics.Warning:
		return protocol.DiagnosticSeverityWarning
	case diagnostics.Note:
		return protocol.DiagnosticSeverityInformation
	case diagnostics.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func message(d diagnostics.Diagnostic) string {
	var b strings.Builder
	b.WriteString(d.Message)
	for _, s := range d.Suggestions {
		b.WriteString("\n")
		b.WriteString(s.Message)
	}
	for _, note := range d.Notes {
		b.WriteString("\nnote: ")
		b.WriteString(note)
	}
	if d.HelpText != "" {
		b.WriteString("\nhelp: ")
		b.WriteString(d.HelpText)
	}
	return b.String()
}

// toProtocolRange clamps unknown positions to the start of the document.
func toProtocolRange(r lexer.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(r.Start),
		End:   toProtocolPosition(r.End),
	}
}

func toProtocolPosition(p lexer.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(max(p.Line, 0)),
		Character: protocol.UInteger(max(p.Character, 0)),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
