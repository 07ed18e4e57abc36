package lexer

// TokenSource produces tokens one at a time. *Lexer is the usual source.
type TokenSource interface {
	NextToken() Token
}

type TokenScanner interface {
	Peek(k int) Token
	Read() Token
}

const lookaheadCapacity = 10

// TokenBuffer is a fixed ring of pending tokens pulled from a TokenSource.
// Once the source hands out EOF it is never pulled again.
type TokenBuffer struct {
	source TokenSource

	ring [lookaheadCapacity]Token
	head int
	size int

	done bool
	last Token
}

func NewTokenBuffer(source TokenSource) TokenScanner {
	b := &TokenBuffer{
		source: source,
	}
	b.fill()

	return b
}

func (b *TokenBuffer) fill() {
	for b.size < lookaheadCapacity && !b.done {
		token := b.source.NextToken()
		if token.Kind == EOF {
			b.done = true
		}

		b.ring[(b.head+b.size)%lookaheadCapacity] = token
		b.size++
		b.last = token
	}
}

// Peek returns the k-th pending token, counting from 1. Beyond the buffered
// tokens it keeps returning the last token pulled.
func (b *TokenBuffer) Peek(k int) Token {
	if k < 1 {
		k = 1
	}

	if k > b.size {
		return b.last
	}

	return b.ring[(b.head+k-1)%lookaheadCapacity]
}

func (b *TokenBuffer) Read() Token {
	if b.size == 0 {
		return b.last
	}

	token := b.ring[b.head]
	b.head = (b.head + 1) % lookaheadCapacity
	b.size--
	b.fill()

	return token
}
