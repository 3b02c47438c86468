package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"pil/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for
// IDE display: missing semicolons, malformed identities, misplaced
// keywords and the like.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(parseErr.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 5), // Rough span for visibility
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("pil-parser"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics:
// invalid characters, unterminated strings and comments.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		// Use the Length field if available, otherwise default span
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column + 3) // Default small span
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("pil-scanner"),
			Message:  scanErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
