package texasholdem

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker/handanalyzer"
	"holdem-engine/pkg/playable/poker/potmanager"
)

const (
	communityCards = 5
	burnCards      = 3
)

// Game is a game of Texas Hold'em
// A game owns the deck, the players and the pot. It plays one hand at a time.
type Game struct {
	logger     logrus.FieldLogger
	options    Options
	deck       *deck.Deck
	players    []*Player
	potManager *potmanager.PotManager
	community  deck.Hand
	street     Street

	dealer     int
	smallBlind int
	bigBlind   int

	handNumber int
	// chipsInPlay is the sum of every stack before the current hand was dealt
	chipsInPlay int

	logs []*playable.LogMessage
}

// Options configures how Texas Hold'em is played
type Options struct {
	SmallBlind int
	BigBlind   int
	// Limit caps what a player can put into the pot in a single hand; 0 is no limit
	Limit   int
	Variant Variant
	// Generator shuffles the deck; the crypto generator is used if nil
	Generator rng.Generator
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind: 25,
		BigBlind:   50,
		Limit:      0,
		Variant:    Standard,
	}
}

// NewGame returns a new game of Texas Hold'em
// Players are seated in the order provided. The first player has the button.
func NewGame(logger logrus.FieldLogger, players []*Player, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, playable.NewValidationError("there must be at least two players")
	}

	if err := validateCapacity(opts.Variant, len(players)); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(players))
	seated := make([]*Player, len(players))
	for i, p := range players {
		if p == nil {
			return nil, playable.NewValidationError("player %d is nil", i)
		}

		if seen[p.ID()] {
			return nil, playable.NewValidationError("%s is seated more than once", p.Name)
		}
		seen[p.ID()] = true

		if p.Chips() <= 0 {
			return nil, playable.NewValidationError("%s must have chips to sit down", p.Name)
		}

		p.seat = i
		p.Fold()
		seated[i] = p
	}

	if opts.Generator == nil {
		opts.Generator = rng.Crypto{}
	}

	g := &Game{
		logger:    logger,
		options:   opts,
		deck:      deck.New(),
		players:   seated,
		community: make(deck.Hand, 0, communityCards),
		street:    StreetWaiting,
		dealer:    0,
		logs:      make([]*playable.LogMessage, 0),
	}

	g.potManager = potmanager.New(g.dealer, len(seated))
	g.setBlindSeats()

	return g, nil
}

func validateOptions(opts Options) error {
	if _, err := VariantFromString(string(opts.Variant)); err != nil {
		return playable.NewValidationError("%s", err.Error())
	}

	if err := validateBlinds(opts.SmallBlind, opts.BigBlind); err != nil {
		return err
	}

	return validateLimit(opts.Limit, opts.BigBlind)
}

func validateBlinds(small, big int) error {
	if small <= 0 {
		return playable.NewValidationError("small blind must be greater than zero")
	}

	if big < small {
		return playable.NewValidationError("big blind must be at least the small blind")
	}

	return nil
}

func validateLimit(limit, bigBlind int) error {
	if limit < 0 {
		return playable.NewValidationError("limit must be >= 0")
	}

	if limit > 0 && limit < bigBlind {
		return playable.NewValidationError("limit of %d is less than the big blind", limit)
	}

	return nil
}

// validateCapacity ensures the deck can never run out mid-hand
func validateCapacity(variant Variant, players int) error {
	need := variant.HoleCards()*players + communityCards + burnCards
	if need > deck.Size {
		return playable.NewValidationError("%d players need %d cards, the deck only has %d", players, need, deck.Size)
	}

	return nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	if g.options.Variant == LazyPineapple {
		return "Lazy Pineapple"
	}

	return "Texas Hold'em"
}

// DealCards starts a new hand
// The deck is reshuffled and every player's previous hand is mucked. Each player
// is dealt their hole cards one at a time, starting left of the dealer, and then
// the blinds are posted.
func (g *Game) DealCards() error {
	if g.street != StreetWaiting {
		return playable.NewStateError("cannot deal cards from the %s", g.street)
	}

	if len(g.players) < 2 {
		return playable.NewValidationError("there must be at least two players")
	}

	if err := validateCapacity(g.options.Variant, len(g.players)); err != nil {
		return err
	}

	g.chipsInPlay = 0
	for _, p := range g.players {
		if p.Chips() <= 0 {
			return playable.NewValidationError("%s has no chips and must be removed before the next hand", p.Name)
		}

		g.chipsInPlay += p.Chips()
	}

	g.deck.Shuffle(g.options.Generator)
	g.community = g.community[:0]
	g.potManager = potmanager.New(g.dealer, len(g.players))
	for _, p := range g.players {
		p.newHand()
	}

	g.handNumber++
	g.logger.WithFields(logrus.Fields{
		"hand":    g.handNumber,
		"dealer":  g.dealer,
		"players": len(g.players),
		"deck":    g.deck.HashCode(),
	}).Debug("dealing a new hand")

	n := len(g.players)
	for i := 0; i < g.options.Variant.HoleCards(); i++ {
		for j := 1; j <= n; j++ {
			card, err := g.deck.Draw()
			if err != nil {
				return fmt.Errorf("could not deal hole cards: %w", err)
			}

			g.players[(g.dealer+j)%n].dealHoleCard(card)
		}
	}

	for _, p := range g.players {
		g.logs = append(g.logs, playable.CardsLogMessage(p.ID(), p.HoleCards(), "{} was dealt %d cards", g.options.Variant.HoleCards()))
	}

	g.street = StreetPreFlop

	if err := g.postBlind(g.players[g.smallBlind], g.options.SmallBlind, "small"); err != nil {
		return err
	}

	return g.postBlind(g.players[g.bigBlind], g.options.BigBlind, "big")
}

func (g *Game) postBlind(p *Player, amount int, name string) error {
	paid, err := g.MakeBet(p, amount)
	if err != nil {
		return fmt.Errorf("could not post the %s blind: %w", name, err)
	}

	g.logs = append(g.logs, playable.SimpleLogMessage(p.ID(), "{} posted the %s blind of %d", name, paid))
	return nil
}

// Flop burns a card and reveals three community cards
func (g *Game) Flop() error {
	return g.reveal(StreetPreFlop, StreetFlop, 3)
}

// Turn burns a card and reveals the fourth community card
func (g *Game) Turn() error {
	return g.reveal(StreetFlop, StreetTurn, 1)
}

// River burns a card and reveals the final community card
func (g *Game) River() error {
	return g.reveal(StreetTurn, StreetRiver, 1)
}

func (g *Game) reveal(from, to Street, cards int) error {
	if g.street != from {
		return playable.NewStateError("cannot deal the %s from the %s", to, g.street)
	}

	if !g.deck.CanDraw(cards + 1) {
		return fmt.Errorf("cannot deal the %s: %w", to, deck.ErrDeckExhausted)
	}

	if err := g.deck.Burn(); err != nil {
		return err
	}

	revealed := make(deck.Hand, 0, cards)
	for i := 0; i < cards; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		revealed.AddCard(card)
		g.community.AddCard(card)
		for _, p := range g.players {
			if p.InHand() {
				p.DealCard(card)
			}
		}
	}

	g.street = to
	g.logs = append(g.logs, playable.CardsLogMessage(uuid.Nil, revealed, "the %s", to))
	g.logger.WithFields(logrus.Fields{
		"hand":      g.handNumber,
		"street":    to.String(),
		"community": g.community.String(),
	}).Debug("revealed community cards")

	return nil
}

// Showdown ends the betting
// The river must be dealt first, unless fewer than two players are left in the hand
func (g *Game) Showdown() error {
	if g.street == StreetRiver || (g.street.IsBettingRound() && g.PlayersInHand() < 2) {
		g.street = StreetShowdown
		return nil
	}

	return playable.NewStateError("cannot go to the showdown from the %s", g.street)
}

// MakeBet takes up to amount chips from the player and puts them in the pot
// The amount is capped by the player's stack and by the per-hand limit. The chips
// actually wagered are returned.
func (g *Game) MakeBet(p *Player, amount int) (int, error) {
	if !g.street.IsBettingRound() {
		return 0, playable.NewStateError("cannot bet during the %s", g.street)
	}

	if err := g.checkSeated(p); err != nil {
		return 0, err
	}

	if amount <= 0 {
		return 0, playable.NewValidationError("bet must be greater than zero, got %d", amount)
	}

	if !p.InHand() {
		return 0, playable.NewValidationError("%s is not in the hand", p.Name)
	}

	if g.options.Limit > 0 {
		remaining := g.options.Limit - g.potManager.Contribution(p)
		if remaining <= 0 {
			return 0, playable.NewValidationError("%s has reached the limit of %d", p.Name, g.options.Limit)
		}

		amount = min(amount, remaining)
	}

	wagered := p.Bet(amount)
	if wagered == 0 {
		return 0, playable.NewValidationError("%s is all-in", p.Name)
	}

	if err := g.potManager.Bet(p, wagered); err != nil {
		p.AddChips(wagered)
		return 0, err
	}

	return wagered, nil
}

// MaxBet returns the most the player can still put into the pot this hand
func (g *Game) MaxBet(p *Player) int {
	if !p.InHand() {
		return 0
	}

	amount := p.Chips()
	if g.options.Limit > 0 {
		amount = min(amount, g.options.Limit-g.potManager.Contribution(p))
	}

	return max(amount, 0)
}

// Fold takes the player out of the hand
// Chips the player already put in the pot stay there
func (g *Game) Fold(p *Player) error {
	if !g.street.IsBettingRound() {
		return playable.NewStateError("cannot fold during the %s", g.street)
	}

	if err := g.checkSeated(p); err != nil {
		return err
	}

	if !p.InHand() {
		return playable.NewValidationError("%s is not in the hand", p.Name)
	}

	p.Fold()
	g.potManager.Fold(p)
	g.logs = append(g.logs, playable.SimpleLogMessage(p.ID(), "{} folded"))

	return nil
}

func (g *Game) checkSeated(p *Player) error {
	if p == nil || p.seat < 0 || p.seat >= len(g.players) || g.players[p.seat] != p {
		return playable.NewValidationError("player is not seated at the table")
	}

	return nil
}

// Evaluate ranks every player still in the hand
// The result is a list of tiers, best hand first, and is the input for PotManager.Divvy().
// A player who never put chips in the pot shows their hand but has no claim on it.
func (g *Game) Evaluate() ([][]potmanager.Participant, error) {
	if g.street != StreetShowdown {
		return nil, playable.NewStateError("cannot evaluate hands during the %s", g.street)
	}

	wm := potmanager.NewWinManager()
	for _, p := range g.players {
		if !p.InHand() {
			continue
		}

		rank := handanalyzer.Evaluate(p.hand)
		p.rank = &rank
		if g.potManager.Contribution(p) == 0 {
			continue
		}

		wm.AddParticipant(p, rank.GetStrength())
	}

	return wm.GetSortedTiers(), nil
}

// Settle evaluates the hands, pays out the pot and ends the hand
func (g *Game) Settle() (*HandLog, error) {
	rankings, err := g.Evaluate()
	if err != nil {
		return nil, err
	}

	contributions := g.potManager.Contributions()
	pots := g.potManager.Pots()
	size := g.potManager.Size()
	if total := pots.Total(); total != size {
		return nil, playable.NewSettlementError("the pots total %d but the pot is %d", total, size)
	}

	payouts, err := g.potManager.Divvy(rankings)
	if err != nil {
		return nil, err
	}

	handLog := g.handLog(pots, size, contributions, payouts)
	if err := g.EndHand(); err != nil {
		return handLog, err
	}

	g.logHand(handLog)
	return handLog, nil
}

// EndHand resets the game for the next hand
// The pot must already be settled, and the chips on the table must match what was
// there when the hand was dealt.
func (g *Game) EndHand() error {
	if g.street != StreetShowdown {
		return playable.NewStateError("cannot end the hand during the %s", g.street)
	}

	if size := g.potManager.Size(); size != 0 {
		return playable.NewSettlementError("pot still has %d chips", size)
	}

	total := 0
	for _, p := range g.players {
		total += p.Chips()
	}

	if total != g.chipsInPlay {
		return playable.NewSettlementError("hand started with %d chips but ended with %d", g.chipsInPlay, total)
	}

	g.street = StreetWaiting
	return nil
}

// AbortHand gives every player back what they put in the pot and returns the table
// to waiting, so a hand that could not be settled does not end the session.
// Chips already paid out by a failed settlement are not clawed back.
func (g *Game) AbortHand() error {
	if g.street == StreetWaiting {
		return playable.NewStateError("there is no hand to abort")
	}

	refunds := g.potManager.Refund()
	for _, p := range g.players {
		if amount := refunds[p.ID()]; amount > 0 {
			g.logs = append(g.logs, playable.SimpleLogMessage(p.ID(), "{} was refunded %d", amount))
		}
	}

	g.logger.WithFields(logrus.Fields{
		"hand":     g.handNumber,
		"street":   g.street.String(),
		"refunded": len(refunds),
	}).Warn("hand aborted")

	g.street = StreetWaiting
	return nil
}

// RemoveEliminated removes every player without chips
// Players can only be removed between hands. Players seated after a removed player
// shift down one seat. The button stays with the closest remaining player at or
// before its seat, so the next rotation moves it to the correct player.
func (g *Game) RemoveEliminated() ([]*Player, error) {
	if g.street != StreetWaiting {
		return nil, playable.NewStateError("cannot remove players during the %s", g.street)
	}

	remaining := make([]*Player, 0, len(g.players))
	eliminated := make([]*Player, 0)
	dealer := -1
	for _, p := range g.players {
		if p.Chips() > 0 {
			if p.seat <= g.dealer {
				dealer++
			}

			p.seat = len(remaining)
			remaining = append(remaining, p)
			continue
		}

		eliminated = append(eliminated, p)
		p.Fold()
		g.logs = append(g.logs, playable.SimpleLogMessage(p.ID(), "{} was eliminated"))
		g.logger.WithFields(logrus.Fields{
			"player": p.Name,
			"hand":   g.handNumber,
		}).Info("player eliminated")
	}

	if len(eliminated) == 0 {
		return eliminated, nil
	}

	g.players = remaining
	if len(remaining) == 0 {
		g.dealer = 0
		return eliminated, nil
	}

	if dealer < 0 {
		dealer = len(remaining) - 1
	}

	g.dealer = dealer
	if len(remaining) >= 2 {
		g.setBlindSeats()
	}

	return eliminated, nil
}

// RotateBlinds moves the button one seat to the left along with the blinds
func (g *Game) RotateBlinds() error {
	if len(g.players) < 2 {
		return playable.NewValidationError("cannot rotate the blinds with fewer than two players")
	}

	if g.street != StreetWaiting {
		return playable.NewStateError("cannot rotate the blinds during the %s", g.street)
	}

	g.dealer = (g.dealer + 1) % len(g.players)
	g.setBlindSeats()

	return nil
}

// setBlindSeats places the blinds relative to the dealer
// Heads-up, the dealer posts the small blind and the other player posts the big blind
func (g *Game) setBlindSeats() {
	n := len(g.players)
	if n == 2 {
		g.smallBlind = g.dealer
		g.bigBlind = (g.dealer + 1) % n
		return
	}

	g.smallBlind = (g.dealer + 1) % n
	g.bigBlind = (g.dealer + 2) % n
}

// UpBlinds replaces the blind amounts, starting with the next hand
func (g *Game) UpBlinds(small, big int) error {
	if err := validateBlinds(small, big); err != nil {
		return err
	}

	if err := validateLimit(g.options.Limit, big); err != nil {
		return err
	}

	g.options.SmallBlind = small
	g.options.BigBlind = big
	g.logger.WithFields(logrus.Fields{
		"smallBlind": small,
		"bigBlind":   big,
	}).Info("blinds are up")

	return nil
}

// Street returns where the hand is
func (g *Game) Street() Street {
	return g.street
}

// Community returns a copy of the community cards
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// Pot returns the pot for the current hand
func (g *Game) Pot() *potmanager.PotManager {
	return g.potManager
}

// Players returns the seated players in seat order
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// PlayersInHand returns the number of players who have not folded
func (g *Game) PlayersInHand() int {
	n := 0
	for _, p := range g.players {
		if p.InHand() {
			n++
		}
	}

	return n
}

// Dealer returns the seat with the button
func (g *Game) Dealer() int {
	return g.dealer
}

// SmallBlindSeat returns the seat that posts the small blind
func (g *Game) SmallBlindSeat() int {
	return g.smallBlind
}

// BigBlindSeat returns the seat that posts the big blind
func (g *Game) BigBlindSeat() int {
	return g.bigBlind
}

// Blinds returns the small and big blind amounts
func (g *Game) Blinds() (int, int) {
	return g.options.SmallBlind, g.options.BigBlind
}

// Limit returns the per-hand cap on each player's contribution, 0 if there is none
func (g *Game) Limit() int {
	return g.options.Limit
}

// HandNumber returns how many hands have been dealt
func (g *Game) HandNumber() int {
	return g.handNumber
}

// Logs returns the log messages since the last call
func (g *Game) Logs() []*playable.LogMessage {
	logs := g.logs
	g.logs = make([]*playable.LogMessage, 0)
	return logs
}
