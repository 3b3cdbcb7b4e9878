package compiler

import (
	cerrors "github.com/ohadswissa/nand2tetris-jack-compiler/internal/errors"
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/lexer"
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/symtab"
)

// compileClass implements:
//
//	class = 'class' ID '{' classVarDec* subroutineDec* '}'
//
// It binds the class name, processes every field/static declaration (which
// only populate the symbol table and emit nothing), then every subroutine.
// A non-empty tokenizer after the closing brace is reported as StrayInput.
func (e *Engine) compileClass() error {
	if err := e.expectKeyword(lexer.CLASS); err != nil {
		return err
	}

	name, err := e.expectIdentifier()
	if err != nil {
		return err
	}
	e.className = name

	if err := e.expectSymbol('{'); err != nil {
		return err
	}

	for e.tok.HasMore() {
		tok := e.advance()
		if tok.Type != lexer.STATIC && tok.Type != lexer.FIELD {
			e.tok.StepBack()
			break
		}
		if err := e.compileClassVarDec(tok.Type); err != nil {
			return err
		}
	}

subroutines:
	for e.tok.HasMore() {
		tok := e.advance()
		switch tok.Type {
		case lexer.CONSTRUCTOR, lexer.FUNCTION, lexer.METHOD:
			if err := e.compileSubroutine(tok.Type); err != nil {
				return err
			}
		default:
			e.tok.StepBack()
			break subroutines
		}
	}

	if err := e.expectSymbol('}'); err != nil {
		return err
	}

	if e.tok.Remaining() > 0 {
		return &cerrors.StrayInput{Pos: e.tok.Advance().Pos}
	}
	return nil
}

// compileClassVarDec implements:
//
//	classVarDec = ('static'|'field') type ID (',' ID)* ';'
func (e *Engine) compileClassVarDec(keyword lexer.TokenType) error {
	kind := symtab.Static
	if keyword == lexer.FIELD {
		kind = symtab.Field
	}

	typeName, err := e.compileType()
	if err != nil {
		return err
	}

	for {
		name, err := e.expectIdentifier()
		if err != nil {
			return err
		}
		e.st.Define(name, typeName, kind)

		tok := e.advance()
		if tok.Type == lexer.COMMA {
			continue
		}
		e.tok.StepBack()
		break
	}

	return e.expectSymbol(';')
}

// compileSubroutine implements:
//
//	subroutineDec = ('constructor'|'function'|'method') ('void'|type) ID
//	                '(' parameterList ')' subroutineBody
//
// and the code-generation rules for subroutine entry: start a fresh
// subroutine scope, bind 'this' as argument 0 for methods, declare
// parameters, process local var declarations, emit the function header, and
// emit the kind-specific preamble before the statement list.
func (e *Engine) compileSubroutine(kind lexer.TokenType) error {
	e.st.StartSubroutine()

	if kind == lexer.METHOD {
		e.st.Define("this", e.className, symtab.Argument)
	}

	// 'void' | type
	tok := e.advance()
	if tok.Type != lexer.VOID {
		e.tok.StepBack()
		if _, err := e.compileType(); err != nil {
			return err
		}
	}

	name, err := e.expectIdentifier()
	if err != nil {
		return err
	}
	e.subroutineName = name

	if err := e.expectSymbol('('); err != nil {
		return err
	}
	if err := e.compileParameterList(); err != nil {
		return err
	}
	if err := e.expectSymbol(')'); err != nil {
		return err
	}

	return e.compileSubroutineBody(kind)
}

// compileParameterList implements:
//
//	parameterList = ( type ID (',' type ID)* )?
func (e *Engine) compileParameterList() error {
	tok := e.advance()
	if tok.Type == lexer.RPAREN {
		e.tok.StepBack()
		return nil
	}
	e.tok.StepBack()

	for {
		typeName, err := e.compileType()
		if err != nil {
			return err
		}
		name, err := e.expectIdentifier()
		if err != nil {
			return err
		}
		e.st.Define(name, typeName, symtab.Argument)

		tok := e.advance()
		if tok.Type == lexer.COMMA {
			continue
		}
		e.tok.StepBack()
		return nil
	}
}

// compileSubroutineBody implements:
//
//	subroutineBody = '{' varDec* statement* '}'
//
// plus the emission of the function header and kind-specific preamble once
// the local-variable count is known.
func (e *Engine) compileSubroutineBody(kind lexer.TokenType) error {
	if err := e.expectSymbol('{'); err != nil {
		return err
	}

	for e.tok.HasMore() {
		tok := e.advance()
		if tok.Type != lexer.VAR {
			e.tok.StepBack()
			break
		}
		if err := e.compileVarDec(); err != nil {
			return err
		}
	}

	e.vm.WriteFunction(e.className+"."+e.subroutineName, e.st.VarCount(symtab.Local))

	switch kind {
	case lexer.METHOD:
		e.vm.WritePush("argument", 0)
		e.vm.WritePop("pointer", 0)
	case lexer.CONSTRUCTOR:
		e.vm.WritePush("constant", e.st.VarCount(symtab.Field))
		e.vm.WriteCall("Memory.alloc", 1)
		e.vm.WritePop("pointer", 0)
	}

	if err := e.compileStatements(); err != nil {
		return err
	}

	return e.expectSymbol('}')
}

// compileVarDec implements:
//
//	varDec = 'var' type ID (',' ID)* ';'
func (e *Engine) compileVarDec() error {
	typeName, err := e.compileType()
	if err != nil {
		return err
	}

	for {
		name, err := e.expectIdentifier()
		if err != nil {
			return err
		}
		e.st.Define(name, typeName, symtab.Local)

		tok := e.advance()
		if tok.Type == lexer.COMMA {
			continue
		}
		e.tok.StepBack()
		break
	}

	return e.expectSymbol(';')
}
