package entity

// Item is a loose pickup (gold, potions) that rolls with friction and settles
// on platforms.
type Item struct {
	Body
	Kind   string
	Amount int

	// Settled items keep a frozen Y until their support disappears
	Settled bool
	RestY   float64

	CollectDelay  float64
	CollectRadius float64
}

// NewItem creates a new item popping up from x, y.
// The spread velocity is derived from the item's id so drops fan out
// without consuming randomness.
func NewItem(id EntityID, x, y, size float64, kind string, amount int, collectDelay, collectRadius float64) *Item {
	it := &Item{
		Body:          NewBody(id, x, y, size, size),
		Kind:          kind,
		Amount:        amount,
		CollectDelay:  collectDelay,
		CollectRadius: collectRadius,
	}
	it.Health = 1
	it.VX = float64(int(id)%10-5) * 20
	it.VY = -100
	return it
}

// CanCollect returns true if item can be collected
func (it *Item) CanCollect() bool {
	return it.Active && it.CollectDelay <= 0
}

// Settle freezes the item at its current height
func (it *Item) Settle() {
	it.Settled = true
	it.RestY = it.Y
	it.VY = 0
}
