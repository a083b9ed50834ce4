package keyfilter

// KeyEvent is a plain Event implementation, useful when key presses arrive
// over the wire or from a terminal rather than a browser.
type KeyEvent struct {
	KeyName   string
	Ctrl      bool
	Meta      bool
	Input     string
	Prevented bool
}

func (e *KeyEvent) Key() string     { return e.KeyName }
func (e *KeyEvent) CtrlKey() bool   { return e.Ctrl }
func (e *KeyEvent) MetaKey() bool   { return e.Meta }
func (e *KeyEvent) Value() string   { return e.Input }
func (e *KeyEvent) PreventDefault() { e.Prevented = true }
