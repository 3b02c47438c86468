package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pil/internal/lsp"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewPilHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "fibonacci.pil"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 16)

	assertToken(t, &decoded[0], 1, 10, 2, "variable", []string{"declaration"})   // %N
	assertToken(t, &decoded[1], 3, 11, 9, "namespace", []string{"declaration"}) // Fibonacci
	assertToken(t, &decoded[2], 3, 21, 2, "variable", nil)                      // %N
	assertToken(t, &decoded[3], 4, 18, 4, "property", []string{"declaration"})  // LAST
	assertToken(t, &decoded[4], 5, 16, 1, "property", []string{"declaration"})  // x
	assertToken(t, &decoded[5], 5, 19, 1, "property", []string{"declaration"})  // y
	assertToken(t, &decoded[6], 7, 10, 4, "property", nil)                      // LAST
	assertToken(t, &decoded[7], 7, 19, 2, "property", nil)                      // x'
	assertToken(t, &decoded[8], 7, 24, 1, "property", nil)                      // y
	assertToken(t, &decoded[13], 10, 12, 3, "variable", []string{"declaration"})
	assertToken(t, &decoded[14], 10, 18, 1, "property", nil)
	assertToken(t, &decoded[15], 10, 20, 2, "variable", nil)
}

func TestSemanticTokensForASM(t *testing.T) {
	handler := lsp.NewPilHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "square.asm"))
	require.NoError(t, err)

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.NotEmpty(t, decoded)

	// The four register declarations come first.
	assertToken(t, &decoded[0], 1, 5, 2, "variable", []string{"declaration"}) // pc
	assertToken(t, &decoded[1], 2, 5, 1, "variable", []string{"declaration"}) // X
	assertToken(t, &decoded[2], 3, 5, 1, "variable", []string{"declaration"}) // A
	assertToken(t, &decoded[3], 4, 5, 1, "variable", []string{"declaration"}) // B
}

func TestConvertParseErrors(t *testing.T) {
	diags := lsp.ConvertParseErrors(nil)
	require.Empty(t, diags)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
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
