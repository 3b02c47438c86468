package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pil/internal/ast"
	"pil/internal/parser"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
	"macro",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
}

// PilHandler implements the LSP server handlers for PIL and ASM files.
// Both dialects are served by one handler; the file extension selects
// the parser.
type PilHandler struct {
	mu      sync.RWMutex
	content map[string]string
	pil     map[string]*ast.PILFile
	asm     map[string]*ast.ASMFile
}

// NewPilHandler creates and returns a new PilHandler instance
func NewPilHandler() *PilHandler {
	return &PilHandler{
		content: make(map[string]string),
		pil:     make(map[string]*ast.PILFile),
		asm:     make(map[string]*ast.ASMFile),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *PilHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *PilHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("PIL LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *PilHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("PIL LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes requested by the client.
func (h *PilHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *PilHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateAST(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}

	if diagnostics != nil {
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	}

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *PilHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.pil, path)
	delete(h.asm, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *PilHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateAST(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}

	if diagnostics != nil {
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	}

	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *PilHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	pilFile := h.pil[path]
	asmFile := h.asm[path]
	h.mu.RUnlock()

	if pilFile == nil && asmFile == nil {
		diagnostics, err := h.updateAST(params.TextDocument.URI)
		if err != nil {
			return nil, err
		}
		if diagnostics != nil {
			sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
		}

		h.mu.RLock()
		pilFile = h.pil[path]
		asmFile = h.asm[path]
		h.mu.RUnlock()
	}

	var tokens []SemanticToken
	if pilFile != nil {
		tokens = collectPILTokens(pilFile)
	} else if asmFile != nil {
		tokens = collectASMTokens(asmFile)
	}

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// updateAST re-reads and re-parses the file behind the URI, stores the
// fresh tree and returns the diagnostics to publish. A file that fails
// to parse keeps no stale tree.
func (h *PilHandler) updateAST(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.content[path] = string(content)
	delete(h.pil, path)
	delete(h.asm, path)

	if strings.HasSuffix(path, ".asm") {
		file, parseErrors, scanErrors := parser.ParseASMSource(path, string(content))
		if file != nil {
			h.asm[path] = file
		}
		return append(ConvertScanErrors(scanErrors), ConvertParseErrors(parseErrors)...), nil
	}

	file, parseErrors, scanErrors := parser.ParsePILSource(path, string(content))
	if file != nil {
		h.pil[path] = file
	}
	return append(ConvertScanErrors(scanErrors), ConvertParseErrors(parseErrors)...), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
