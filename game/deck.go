package game

import "golang.org/x/exp/rand"

// Deck owns the train-card economy: the draw pile, the discard pile, the
// five face-up slots and the destination-ticket pile. All mutation happens
// through its methods; the turn engine is the only caller.
type Deck struct {
	rng      *rand.Rand
	drawPile []Color
	discard  []Color
	faceUp   []Color
	tickets  []DestinationTicket
}

// NewDeck builds a shuffled 110-card train deck and the 30-ticket
// destination pile, then deals the five face-up slots. The rand source is
// injected so games replay deterministically under a fixed seed.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for _, c := range Colors {
		for i := 0; i < cardsPerColor; i++ {
			d.drawPile = append(d.drawPile, c)
		}
	}
	for i := 0; i < locomotiveQty; i++ {
		d.drawPile = append(d.drawPile, Locomotive)
	}
	d.shuffle(d.drawPile)

	d.tickets = make([]DestinationTicket, len(destinationTickets))
	copy(d.tickets, destinationTickets)
	d.rng.Shuffle(len(d.tickets), func(i, j int) {
		d.tickets[i], d.tickets[j] = d.tickets[j], d.tickets[i]
	})

	d.dealFaceUp()
	return d
}

// RestoreDeck rebuilds a deck from previously captured piles, for hosts
// resuming a saved game. The face-up invariant is re-established in case
// the snapshot predates it.
func RestoreDeck(rng *rand.Rand, drawPile, discard, faceUp []Color, tickets []DestinationTicket) *Deck {
	d := &Deck{
		rng:      rng,
		drawPile: append([]Color(nil), drawPile...),
		discard:  append([]Color(nil), discard...),
		faceUp:   append([]Color(nil), faceUp...),
		tickets:  append([]DestinationTicket(nil), tickets...),
	}
	d.checkRedeal()
	return d
}

// shuffle is a uniform Fisher–Yates over the given pile.
func (d *Deck) shuffle(pile []Color) {
	d.rng.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})
}

// DrawFromPile pops the top of the draw pile, reshuffling the discard pile
// into it first when empty. Both piles empty is ErrDeckExhausted.
func (d *Deck) DrawFromPile() (Color, error) {
	if len(d.drawPile) == 0 {
		if len(d.discard) == 0 {
			return NoCard, ErrDeckExhausted
		}
		d.drawPile = d.discard
		d.discard = nil
		d.shuffle(d.drawPile)
	}
	card := d.drawPile[0]
	d.drawPile = d.drawPile[1:]
	return card, nil
}

// DrawFaceUp takes the card at the given slot, refills the slot from the
// draw pile and re-applies the locomotive redeal rule. An exhausted refill
// leaves the slot empty rather than failing the draw.
func (d *Deck) DrawFaceUp(slot int) (Color, error) {
	if slot < 0 || slot >= len(d.faceUp) || d.faceUp[slot] == NoCard {
		return NoCard, ErrDeckExhausted
	}
	card := d.faceUp[slot]
	refill, err := d.DrawFromPile()
	if err != nil {
		refill = NoCard
	}
	d.faceUp[slot] = refill
	d.checkRedeal()
	return card, nil
}

// dealFaceUp deals the five slots fresh from the draw pile.
func (d *Deck) dealFaceUp() {
	d.faceUp = make([]Color, FaceUpSlots)
	for i := range d.faceUp {
		card, err := d.DrawFromPile()
		if err != nil {
			card = NoCard
		}
		d.faceUp[i] = card
	}
	d.checkRedeal()
}

// checkRedeal enforces the face-up invariant: the slots never rest with
// three or more locomotives showing while the draw pile is non-empty.
func (d *Deck) checkRedeal() {
	for d.locomotivesShowing() >= 3 && len(d.drawPile) > 0 {
		for i, c := range d.faceUp {
			if c != NoCard {
				d.discard = append(d.discard, c)
			}
			d.faceUp[i] = NoCard
		}
		for i := range d.faceUp {
			card, err := d.DrawFromPile()
			if err != nil {
				card = NoCard
			}
			d.faceUp[i] = card
		}
	}
}

func (d *Deck) locomotivesShowing() int {
	n := 0
	for _, c := range d.faceUp {
		if c == Locomotive {
			n++
		}
	}
	return n
}

// Discard appends spent cards to the discard pile. The pile is never
// shuffled until draw-pile exhaustion triggers a reshuffle.
func (d *Deck) Discard(cards ...Color) {
	d.discard = append(d.discard, cards...)
}

// DrawDestinationTickets removes up to n tickets from the top of the
// ticket pile, fewer if the pile is short.
func (d *Deck) DrawDestinationTickets(n int) []DestinationTicket {
	if n > len(d.tickets) {
		n = len(d.tickets)
	}
	out := make([]DestinationTicket, n)
	copy(out, d.tickets[:n])
	d.tickets = d.tickets[n:]
	return out
}

// ReturnTickets appends unkept tickets to the bottom of the pile so they
// come up last on later draws.
func (d *Deck) ReturnTickets(tickets []DestinationTicket) {
	d.tickets = append(d.tickets, tickets...)
}

// FaceUp returns a copy of the five face-up slots.
func (d *Deck) FaceUp() []Color {
	out := make([]Color, len(d.faceUp))
	copy(out, d.faceUp)
	return out
}

func (d *Deck) DeckCount() int    { return len(d.drawPile) }
func (d *Deck) DiscardCount() int { return len(d.discard) }
func (d *Deck) TicketCount() int  { return len(d.tickets) }

// Copy deep-copies the deck. The copy shares the rand source; it exists
// for read-only snapshots handed to planners, which never draw.
func (d *Deck) Copy() *Deck {
	cp := &Deck{
		rng:      d.rng,
		drawPile: append([]Color(nil), d.drawPile...),
		discard:  append([]Color(nil), d.discard...),
		faceUp:   append([]Color(nil), d.faceUp...),
		tickets:  append([]DestinationTicket(nil), d.tickets...),
	}
	return cp
}
