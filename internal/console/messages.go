package console

import (
	"math/rand/v2"
)

// DefaultMessages are the built-in motivational messages.
var DefaultMessages = []string{
	"🌟 Great work! Keep pushing your limits!",
	"💡 Every number hides a secret. You found it!",
	"🔥 You're improving, keep going!",
	"🚀 Genius mode activated!",
	"✨ Mathematics loves curious minds like you!",
}

// Picker chooses motivational messages uniformly at random.
// A Picker is not safe for concurrent use.
type Picker struct {
	messages []string
	rng      *rand.Rand
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithSeed makes the sequence of picks reproducible.
func WithSeed(seed uint64) PickerOption {
	return func(p *Picker) {
		p.rng = rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Not security sensitive
	}
}

// NewPicker creates a Picker over messages, or over DefaultMessages when
// messages is empty. The slice is copied.
func NewPicker(messages []string, opts ...PickerOption) *Picker {
	if len(messages) == 0 {
		messages = DefaultMessages
	}
	p := &Picker{
		messages: append([]string(nil), messages...),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // Not security sensitive
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick returns one message.
func (p *Picker) Pick() string {
	return p.messages[p.rng.IntN(len(p.messages))]
}

// Messages returns a copy of the messages the Picker chooses from.
func (p *Picker) Messages() []string {
	return append([]string(nil), p.messages...)
}
