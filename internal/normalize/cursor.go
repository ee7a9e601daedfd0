package normalize

// Cursor walks a token slice. Matchers take a Mark before trying an
// alternative and Reset to it when the alternative fails.
type Cursor struct {
	toks []Token
	pos  int
}

func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

func (c *Cursor) Done() bool { return c.pos >= len(c.toks) }

func (c *Cursor) Mark() int { return c.pos }

func (c *Cursor) Reset(mark int) { c.pos = mark }

// Peek returns the token k places ahead, or an empty Word past the end.
func (c *Cursor) Peek(k int) Token {
	if c.pos+k < len(c.toks) {
		return c.toks[c.pos+k]
	}
	return Token{Kind: Word}
}

func (c *Cursor) Next() Token {
	t := c.Peek(0)
	if !c.Done() {
		c.pos++
	}
	return t
}

// Word consumes the next token when it is one of words.
func (c *Cursor) Word(words ...string) bool {
	if c.Peek(0).Is(words...) {
		c.pos++
		return true
	}
	return false
}

// Kind consumes the next token when it has kind k.
func (c *Cursor) Kind(k Kind) (Token, bool) {
	t := c.Peek(0)
	if c.Done() || t.Kind != k {
		return Token{}, false
	}
	c.pos++
	return t, true
}

// Rest returns the unconsumed tokens.
func (c *Cursor) Rest() []Token { return c.toks[c.pos:] }
