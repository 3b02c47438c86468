// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"pil/internal/lsp"
)

const lsName = "pil" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	pilHandler := lsp.NewPilHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     pilHandler.Initialize,
		Initialized:                    pilHandler.Initialized,
		Shutdown:                       pilHandler.Shutdown,
		SetTrace:                       pilHandler.SetTrace,
		TextDocumentDidOpen:            pilHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           pilHandler.TextDocumentDidClose,
		TextDocumentDidChange:          pilHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: pilHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting %s LSP server %s...", lsName, version)

	// Run over standard input/output, the transport editors expect.
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting PIL LSP server:", err)
		os.Exit(1)
	}
}
