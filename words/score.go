package words

// Score returns the wordle feedback for guess against secret.
//
// First pass marks exact matches and counts the secret letters left over.
// Second pass walks the guess left to right: a non-exact letter with count
// remaining is Present, otherwise Absent. Guessing a letter more times than
// the secret contains it marks only as many Present as remain in the count.
func Score(guess, secret Word) Pattern {
	var p Pattern
	var remaining [26]int
	for i := range secret {
		if guess[i] == secret[i] {
			p[i] = Exact
		} else {
			remaining[secret[i]-'a']++
		}
	}
	for i := range guess {
		if p[i] == Exact {
			continue
		}
		l := guess[i] - 'a'
		if remaining[l] > 0 {
			p[i] = Present
			remaining[l]--
		}
	}
	return p
}
