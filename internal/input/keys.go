package input

import "github.com/eiannone/keyboard"

// Apply performs the pad operation bound to a key press and reports whether
// the key asks to quit.
//
//	0-9          type a digit
//	backspace    delete a digit
//	c / delete   clear the field
//	tab / enter  next field, up or left for the previous one
//	m            switch calculator / tolerance
//	p / +        toggle the plus level
//	r            toggle new record
//	q / esc      quit
func Apply(p *Pad, char rune, key keyboard.Key) bool {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		p.Delete()
		return false
	case keyboard.KeyDelete:
		p.Clear()
		return false
	case keyboard.KeyTab, keyboard.KeyEnter, keyboard.KeyArrowDown, keyboard.KeyArrowRight:
		p.Next()
		return false
	case keyboard.KeyArrowUp, keyboard.KeyArrowLeft:
		p.Prev()
		return false
	}

	switch {
	case char >= '0' && char <= '9':
		p.Press(int(char - '0'))
	case char == 'c':
		p.Clear()
	case char == 'm':
		p.ToggleMode()
	case char == 'p' || char == '+':
		p.TogglePlus()
	case char == 'r':
		p.ToggleRecord()
	case char == 'q':
		return true
	}
	return false
}
