package physics

// Key is a logical movement key.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyJump
)

var keyNames = [...]string{"left", "right", "up", "down", "jump"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Keys answers whether a logical key is held for the current tick.
type Keys interface {
	IsDown(Key) bool
}

// KeySet is a held-key snapshot, sampled once at the tick boundary.
type KeySet uint8

// NewKeySet returns a set with the given keys held.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s.Set(k, true)
	}
	return s
}

func (s KeySet) IsDown(k Key) bool {
	return s&(1<<k) != 0
}

func (s *KeySet) Set(k Key, down bool) {
	if down {
		*s |= 1 << k
	} else {
		*s &^= 1 << k
	}
}

func (s *KeySet) Clear() {
	*s = 0
}
