package entity

// Wallet is the player's running coin total.
// Observers are called after every change with the new total.
type Wallet struct {
	coins     int
	observers []func(total int)
}

// NewWallet creates an empty wallet
func NewWallet() *Wallet {
	return &Wallet{}
}

// OnChange registers an observer and immediately reports the current total
func (w *Wallet) OnChange(fn func(total int)) {
	w.observers = append(w.observers, fn)
	fn(w.coins)
}

// Add adds amount coins. Non-positive amounts are ignored.
func (w *Wallet) Add(amount int) {
	if amount <= 0 {
		return
	}
	w.coins += amount
	w.notify()
}

// Coins returns the current total
func (w *Wallet) Coins() int {
	return w.coins
}

// Reset empties the wallet
func (w *Wallet) Reset() {
	w.coins = 0
	w.notify()
}

func (w *Wallet) notify() {
	for _, fn := range w.observers {
		fn(w.coins)
	}
}
