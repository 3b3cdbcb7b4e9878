package compiler

import (
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/lexer"
	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/vmwriter"
)

// binaryOps maps each of the nine binary operator symbols to its VM form.
// Multiplication and division are calls into the standard library rather
// than native VM commands.
var binaryOps = map[rune]func(e *Engine){
	'+': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.Add) },
	'-': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.Sub) },
	'*': func(e *Engine) { e.vm.WriteCall("Math.multiply", 2) },
	'/': func(e *Engine) { e.vm.WriteCall("Math.divide", 2) },
	'<': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.Lt) },
	'>': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.Gt) },
	'=': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.Eq) },
	'&': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.And) },
	'|': func(e *Engine) { e.vm.WriteArithmetic(vmwriter.Or) },
}

// compileExpression implements:
//
//	expression = term (op term)*
//
// Operators are strictly left-associative and carry no precedence: every
// operator in the chain binds exactly as tightly as the last, matching the
// source language's left-to-right evaluation rule.
func (e *Engine) compileExpression() error {
	if err := e.compileTerm(); err != nil {
		return err
	}

	for e.tok.HasMore() {
		e.advance()
		if !e.tok.IsOperatorCurrent() {
			e.tok.StepBack()
			return nil
		}
		op, _ := e.tok.SymbolOfCurrent()

		if err := e.compileTerm(); err != nil {
			return err
		}
		binaryOps[op](e)
	}
	return nil
}

// compileTerm implements the term production, dispatching on the shape of
// the current token: literals and keyword constants emit directly; a
// parenthesized expression recurses; a unary operator compiles its operand
// then emits neg/not; an identifier requires one token of lookahead to
// distinguish a plain variable from an array access or a subroutine call.
func (e *Engine) compileTerm() error {
	tok := e.advance()

	switch tok.Type {
	case lexer.INT:
		n, err := e.tok.IntValueOfCurrent()
		if err != nil {
			return err
		}
		e.vm.WritePush("constant", n)
		return nil

	case lexer.STRING:
		s, err := e.tok.StringValueOfCurrent()
		if err != nil {
			return err
		}
		e.vm.WritePush("constant", len(s))
		e.vm.WriteCall("String.new", 1)
		for _, ch := range s {
			e.vm.WritePush("constant", int(ch))
			e.vm.WriteCall("String.appendChar", 2)
		}
		return nil

	case lexer.TRUE:
		e.vm.WritePush("constant", 0)
		e.vm.WriteArithmetic(vmwriter.Not)
		return nil

	case lexer.FALSE, lexer.NULL:
		e.vm.WritePush("constant", 0)
		return nil

	case lexer.THIS:
		e.vm.WritePush("pointer", 0)
		return nil

	case lexer.LPAREN:
		if err := e.compileExpression(); err != nil {
			return err
		}
		return e.expectSymbol(')')

	case lexer.MINUS:
		if err := e.compileTerm(); err != nil {
			return err
		}
		e.vm.WriteArithmetic(vmwriter.Neg)
		return nil

	case lexer.TILDE:
		if err := e.compileTerm(); err != nil {
			return err
		}
		e.vm.WriteArithmetic(vmwriter.Not)
		return nil

	case lexer.IDENT:
		return e.compileIdentifierTerm(tok)

	default:
		return e.unexpected("term")
	}
}

// compileIdentifierTerm resolves the one-token lookahead needed after an
// identifier: '[' means an array element read, '(' or '.' means a
// subroutine call, anything else means a plain variable reference.
func (e *Engine) compileIdentifierTerm(name lexer.Token) error {
	next := e.advance()

	switch next.Type {
	case lexer.LBRACK:
		e.emitPush(name.Literal)
		if err := e.compileExpression(); err != nil {
			return err
		}
		if err := e.expectSymbol(']'); err != nil {
			return err
		}
		e.vm.WriteArithmetic(vmwriter.Add)
		e.vm.WritePop("pointer", 1)
		e.vm.WritePush("that", 0)
		return nil

	case lexer.LPAREN, lexer.DOT:
		e.tok.StepBack() // undo the '(' or '.' advance
		e.tok.StepBack() // undo the identifier advance
		return e.compileSubroutineCall()

	default:
		e.tok.StepBack()
		e.emitPush(name.Literal)
		return nil
	}
}

// compileSubroutineCall implements:
//
//	subroutineCall = ID '(' expressionList ')'
//	               | ID '.' ID '(' expressionList ')'
//
// The first form is a call on the current object: it pushes 'this' as the
// hidden receiver argument. The second form either invokes a method on a
// known instance (looked up by name, pushing the instance as the receiver)
// or, when the qualifier does not resolve to a declared variable, a plain
// class-qualified function call with no hidden receiver.
func (e *Engine) compileSubroutineCall() error {
	n1, err := e.expectIdentifier()
	if err != nil {
		return err
	}

	tok := e.advance()
	switch tok.Type {
	case lexer.LPAREN:
		e.vm.WritePush("pointer", 0)
		nArgs, err := e.compileExpressionList()
		if err != nil {
			return err
		}
		if err := e.expectSymbol(')'); err != nil {
			return err
		}
		e.vm.WriteCall(e.className+"."+n1, nArgs+1)
		return nil

	case lexer.DOT:
		n2, err := e.expectIdentifier()
		if err != nil {
			return err
		}
		if err := e.expectSymbol('('); err != nil {
			return err
		}

		declaredType := e.st.TypeOf(n1)
		if declaredType == "" {
			// n1 is not a declared variable: a bare class-qualified call.
			nArgs, err := e.compileExpressionList()
			if err != nil {
				return err
			}
			if err := e.expectSymbol(')'); err != nil {
				return err
			}
			e.vm.WriteCall(n1+"."+n2, nArgs)
			return nil
		}

		e.emitPush(n1)
		nArgs, err := e.compileExpressionList()
		if err != nil {
			return err
		}
		if err := e.expectSymbol(')'); err != nil {
			return err
		}
		e.vm.WriteCall(declaredType+"."+n2, nArgs+1)
		return nil

	default:
		return e.unexpected("( or .")
	}
}

// compileExpressionList implements:
//
//	expressionList = ( expression (',' expression)* )?
//
// returning the number of expressions compiled.
func (e *Engine) compileExpressionList() (int, error) {
	tok := e.advance()
	if tok.Type == lexer.RPAREN {
		e.tok.StepBack()
		return 0, nil
	}
	e.tok.StepBack()

	count := 0
	for {
		if err := e.compileExpression(); err != nil {
			return 0, err
		}
		count++

		tok := e.advance()
		if tok.Type == lexer.COMMA {
			continue
		}
		e.tok.StepBack()
		return count, nil
	}
}
