package app

// Key is a host-neutral key press. Hosts translate their own key codes.
type Key int

const (
	KeyOther   Key = iota
	KeyLaunch      // space
	KeyRestart     // start a new run after game over
	KeyPause
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLaunch:
		return "launch"
	case KeyRestart:
		return "restart"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	}
	return "other"
}
