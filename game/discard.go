package game

// Discard is the face up pile of cards removed from play.
type Discard struct {
	cards []Card
	index map[Card]struct{}
}

func NewDiscard() *Discard {
	return &Discard{index: make(map[Card]struct{})}
}

// Add ignores cards that are already discarded.
func (d *Discard) Add(card Card) {
	if _, ok := d.index[card]; ok {
		return
	}
	d.index[card] = struct{}{}
	d.cards = append(d.cards, card)
}

func (d *Discard) AddAll(cards []Card) {
	for _, card := range cards {
		d.Add(card)
	}
}

func (d *Discard) Contains(card Card) bool {
	_, ok := d.index[card]
	return ok
}

// CardsByColor groups the discarded cards by color, each group in discard order.
func (d *Discard) CardsByColor() map[Color][]Card {
	groups := make(map[Color][]Card)
	for _, card := range d.cards {
		groups[card.Color] = append(groups[card.Color], card)
	}
	return groups
}

func (d *Discard) Len() int {
	return len(d.cards)
}

func (d *Discard) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Discard) Clear() {
	d.cards = nil
	d.index = make(map[Card]struct{})
}

func (d *Discard) copy() *Discard {
	c := NewDiscard()
	c.AddAll(d.cards)
	return c
}
