package lexer_test

import (
	"testing"

	"github.com/ohadswissa/nand2tetris-jack-compiler/internal/lexer"
	"github.com/stretchr/testify/require"
)

func allTypes(t *lexer.Tokenizer) []lexer.TokenType {
	var out []lexer.TokenType
	for t.HasMore() {
		out = append(out, t.Advance().Type)
	}
	return out
}

func TestClassifiesKeywordsSymbolsAndLiterals(t *testing.T) {
	src := `class Foo { field int x; method void bar(int y) { return x + y; } }`
	tok := lexer.New(src)

	require.True(t, tok.HasMore())
	require.Equal(t, lexer.CLASS, tok.Advance().Type)
	require.Equal(t, lexer.IDENT, tok.Advance().Type)
	require.Equal(t, lexer.LBRACE, tok.Advance().Type)
	require.Equal(t, lexer.FIELD, tok.Advance().Type)
	require.Equal(t, lexer.INT_KW, tok.Advance().Type)
}

func TestStepBackUndoesExactlyOneAdvance(t *testing.T) {
	tok := lexer.New("class A { }")
	first := tok.Advance()
	second := tok.Advance()
	tok.StepBack()
	require.Equal(t, second, tok.Advance())
	_ = first
}

func TestLineCommentStrippedToEndOfLine(t *testing.T) {
	withComment := lexer.New("let x = 1; // trailing comment\nlet y = 2;")
	plain := lexer.New("let x = 1; \nlet y = 2;")
	require.Equal(t, allTypes(plain), allTypes(withComment))
}

func TestBlockCommentEquivalence(t *testing.T) {
	// tokenizing pre + "/*" + inside + "*/" + post equals pre + " " + post
	withComment := lexer.New("let x /* this is\nignored entirely */ = 1;")
	plain := lexer.New("let x   = 1;")
	require.Equal(t, allTypes(plain), allTypes(withComment))
}

func TestBlockCommentSpanningMultipleLinesIsFullyDiscarded(t *testing.T) {
	tok := lexer.New("var int a; /* line one\nline two\nline three */ var int b;")
	var idents []string
	for tok.HasMore() {
		t := tok.Advance()
		if t.Type == lexer.IDENT {
			idents = append(idents, t.Literal)
		}
	}
	require.Equal(t, []string{"a", "b"}, idents)
}

func TestStringLiteralPreservesEmbeddedSymbolsAndSpaces(t *testing.T) {
	tok := lexer.New(`"hello, world! + - 42"`)
	require.True(t, tok.HasMore())
	tk := tok.Advance()
	require.Equal(t, lexer.STRING, tk.Type)
	require.Equal(t, `"hello, world! + - 42"`, tk.Literal)
	require.Equal(t, "hello, world! + - 42", lexer.StringValue(tk))
}

func TestUnterminatedStringLiteralIsSilentlyDropped(t *testing.T) {
	tok := lexer.New(`let x = "unterminated;`)
	var types []lexer.TokenType
	for tok.HasMore() {
		types = append(types, tok.Advance().Type)
	}
	require.Equal(t, []lexer.TokenType{lexer.LET, lexer.IDENT, lexer.EQ}, types)
}

func TestIsOperatorCurrent(t *testing.T) {
	tok := lexer.New("+ ~ .")
	tok.Advance()
	require.True(t, tok.IsOperatorCurrent())
	tok.Advance()
	require.False(t, tok.IsOperatorCurrent()) // unary ~ is not a binary operator
	tok.Advance()
	require.False(t, tok.IsOperatorCurrent())
}

func TestIntegerLiteralRangeIsNotValidated(t *testing.T) {
	tok := lexer.New("99999")
	tok.Advance()
	n, err := tok.IntValueOfCurrent()
	require.NoError(t, err)
	require.Equal(t, 99999, n)
}

func TestRemainingReflectsUnconsumedTokens(t *testing.T) {
	tok := lexer.New("a b c")
	require.Equal(t, 3, tok.Remaining())
	tok.Advance()
	require.Equal(t, 2, tok.Remaining())
}
