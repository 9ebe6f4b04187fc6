package canvas

// Button identifies the pointer button of a press or release
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonOther
)

// Key names the non-character keys the canvas reacts to
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyReturn
	KeyBackspace
	KeyDelete
)

// KeyEvent is either a typed character (Rune set, Key == KeyNone) or a named key
type KeyEvent struct {
	Rune rune
	Key  Key
}
