package game

import "golang.org/x/exp/rand"

// Deck is the draw pile. The top of the deck is the end of the slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset refills the deck with all playable cards and shuffles it.
func (d *Deck) Reset() {
	d.cards = AllCards()
	d.Shuffle()
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Pop draws the top card. It returns false when the deck is empty.
func (d *Deck) Pop() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) set(cards []Card) {
	d.cards = cards
}

func (d *Deck) copy() *Deck {
	return &Deck{cards: d.Cards(), rng: d.rng}
}
