package generate

// Upper returns a letter in 'A'..'Z'.
func (g *Generator) Upper() rune {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 'A' + rune(g.r.IntN(26))
}

// Lower returns a letter in 'a'..'z'.
func (g *Generator) Lower() rune {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 'a' + rune(g.r.IntN(26))
}

// Letter returns an upper- or lowercase letter with even odds.
func (g *Generator) Letter() rune {
	if g.Flip() {
		return g.Upper()
	}
	return g.Lower()
}

// Uppers returns n uppercase letters.
func (g *Generator) Uppers(n int) ([]rune, error) {
	return g.runes(n, g.Upper)
}

// Lowers returns n lowercase letters.
func (g *Generator) Lowers(n int) ([]rune, error) {
	return g.runes(n, g.Lower)
}

// Letters returns n letters of mixed case.
func (g *Generator) Letters(n int) ([]rune, error) {
	return g.runes(n, g.Letter)
}

func (g *Generator) runes(n int, next func() rune) ([]rune, error) {
	if n < 0 {
		return nil, paramErr("size", ErrNegativeSize)
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = next()
	}
	return out, nil
}
