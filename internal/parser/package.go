// Package parser turns PIL and ASM source text into syntax trees.
//
// Both entry points share the same contract: scan the whole source,
// then parse it, and return a tree only when the input is completely
// well formed. Any lexical or syntax error yields a nil tree together
// with the error lists, so callers never see a partial AST.
package parser

import "pil/internal/ast"

// ParsePILSource parses a PIL source file. filename is used for
// positions only; source is the full file content.
func ParsePILSource(filename, source string) (*ast.PILFile, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.Errors()) > 0 {
		return nil, nil, scanner.Errors()
	}

	p := NewParser(filename, tokens)
	file := p.ParsePILFile()
	if len(p.Errors()) > 0 {
		return nil, p.Errors(), nil
	}

	return file, nil, nil
}

// ParseASMSource parses an ASM source file under the same contract as
// ParsePILSource.
func ParseASMSource(filename, source string) (*ast.ASMFile, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.Errors()) > 0 {
		return nil, nil, scanner.Errors()
	}

	p := NewParser(filename, tokens)
	file := p.ParseASMFile()
	if len(p.Errors()) > 0 {
		return nil, p.Errors(), nil
	}

	return file, nil, nil
}
