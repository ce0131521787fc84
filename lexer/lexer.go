package lexer

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
	isQuote           = isTokenType(TokenString)
)

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:     []rune(string(in)),
		tokens: []Token{},
		buf:    []rune{},

		line: 1,
		col:  1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in     []rune
	offset int

	tokens []Token

	buf []rune

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns the tokens detected by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan splits the whole input into tokens. The token list always ends with a
// TokenEOF.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	lx.mark()
	lx.emit(TokenEOF)

	return nil
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) eof() bool {
	return lx.offset >= len(lx.in)
}

func (lx *Lexer) peek() rune {
	return lx.in[lx.offset]
}

func (lx *Lexer) next() rune {
	r := lx.in[lx.offset]
	lx.offset++

	if isNewLine(r) {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r
}

// closingQuote returns the offset of the quote that closes the string starting
// at the current offset, or -1. A string holds at least one character and
// never spans lines; no escapes are recognized.
func (lx *Lexer) closingQuote() int {
	start := lx.offset
	for i := start + 1; i < len(lx.in); i++ {
		r := lx.in[i]
		if isNewLine(r) {
			return -1
		}
		if i > start+1 && isQuote(r) {
			return i
		}
	}
	return -1
}

func (lx *Lexer) atStringStart() bool {
	return isQuote(lx.peek()) && lx.closingQuote() >= 0
}

func lexDefaultState(lx *Lexer) lexState {
	if lx.eof() {
		return nil
	}

	lx.mark()

	r := lx.peek()
	switch {
	case isOpenExpression(r):
		lx.next()
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		lx.next()
		return lexEmit(TokenCloseExpression)
	case isWhitespace(r):
		return lexWhitespace
	case lx.atStringStart():
		return lexString
	default:
		return lexAtom
	}
}

func lexWhitespace(lx *Lexer) lexState {
	for !lx.eof() && isWhitespace(lx.peek()) {
		lx.next()
	}
	// separators never become tokens
	lx.buf = lx.buf[0:0]
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	end := lx.closingQuote()
	for lx.offset <= end {
		lx.next()
	}
	return lexEmit(TokenString)
}

func lexAtom(lx *Lexer) lexState {
	for !lx.eof() {
		r := lx.peek()
		if isOpenExpression(r) || isCloseExpression(r) || isWhitespace(r) {
			break
		}
		if lx.atStringStart() {
			break
		}
		lx.next()
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// followed by a TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// Lexemes returns the text of every token in source, in order. Empty source
// yields an empty slice.
func Lexemes(source string) []string {
	tokens, _ := Tokenize([]byte(source))

	lexemes := make([]string, 0, len(tokens))
	for i := range tokens {
		if tokens[i].Is(TokenEOF) {
			continue
		}
		lexemes = append(lexemes, tokens[i].Text())
	}
	return lexemes
}
