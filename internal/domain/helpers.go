package domain

// MissingCards returns, in encoding order, every card of the full deck that
// does not appear in any of the given groups.
func MissingCards(groups ...[]Card) []Card {
	var seen [DeckSize]bool
	for _, group := range groups {
		for _, c := range group {
			if c.Valid() {
				seen[c] = true
			}
		}
	}

	var missing []Card
	for c := Card(0); c < DeckSize; c++ {
		if !seen[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// DuplicateCards returns every card that appears more than once across the groups.
func DuplicateCards(groups ...[]Card) []Card {
	var counts [DeckSize]int
	var dupes []Card
	for _, group := range groups {
		for _, c := range group {
			if !c.Valid() {
				continue
			}
			counts[c]++
			if counts[c] == 2 {
				dupes = append(dupes, c)
			}
		}
	}
	return dupes
}
