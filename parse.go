package prettui

import "unicode/utf8"

// parseKeys parses buffered bytes into key events.
// Handles:
// - Single printable characters -> KeyEvent{Key: KeyRune, Rune: r}
// - Control characters (0x00-0x1F) -> appropriate KeyEvent
// - CSI sequences (\x1b[...) -> Arrow keys, navigation keys with modifiers
// - SS3 sequences (\x1bO...) -> Arrow/Home/End on application-mode terminals
// - Alt+key: \x1b + printable -> KeyRune with ModAlt
func parseKeys(data []byte) []KeyEvent {
	var events []KeyEvent
	i := 0

	for i < len(data) {
		b := data[i]

		// Check for escape sequence
		if b == 0x1b {
			// Look ahead to determine sequence type
			if i+1 >= len(data) {
				// Lone escape at end - treat as escape key
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			next := data[i+1]
			switch next {
			case '[':
				// CSI sequence
				key, mod, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
				// Failed to parse, treat as escape
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			case 'O':
				// SS3 sequence
				if i+2 < len(data) {
					key := parseSS3(data[i+2])
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key})
						i += 3
						continue
					}
				}
				// Failed to parse, treat as escape
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			default:
				// Alt+key combination
				if next >= 0x20 && next < 0x7f {
					events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
					i += 2
					continue
				}
				// Unknown sequence, treat as escape
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
		}

		// Control characters (0x00-0x1F, except 0x1b which is handled above)
		if b < 0x20 {
			if key := controlToKey(b); key != KeyNone {
				events = append(events, KeyEvent{Key: key})
			}
			i++
			continue
		}

		// DEL character (0x7F) is backspace on most terminals
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		// Printable characters (including multi-byte UTF-8)
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8, skip byte
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

// parseKeysWithRemainder parses input and returns any incomplete trailing
// bytes so a partial UTF-8 sequence split across reads is not mangled.
func parseKeysWithRemainder(data []byte) ([]KeyEvent, []byte) {
	remaining := findIncompleteUTF8Suffix(data)
	if len(remaining) > 0 {
		data = data[:len(data)-len(remaining)]
	}

	events := parseKeys(data)
	return events, remaining
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
// Control chords without a navigation meaning map to KeyNone and are dropped.
func controlToKey(b byte) Key {
	switch b {
	case 0x08: // Ctrl+H (backspace on some terminals)
		return KeyBackspace
	case 0x09: // Ctrl+I (tab)
		return KeyTab
	case 0x0a: // Ctrl+J (newline, enter on some terminals)
		return KeyEnter
	case 0x0d: // Ctrl+M (carriage return, enter)
		return KeyEnter
	case 0x1b: // Escape
		return KeyEscape
	default:
		return KeyNone
	}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed.
// Returns (KeyNone, ModNone, 0) if parsing fails.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	// Parse parameters (numbers separated by ;)
	var params []int
	currentParam := 0
	hasParam := false
	i := 2

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			currentParam = currentParam*10 + int(b-'0')
			hasParam = true
			i++
			continue
		}

		if b == ';' {
			params = append(params, currentParam)
			currentParam = 0
			hasParam = false
			i++
			continue
		}

		// Final byte (determines the key)
		if b >= 0x40 && b <= 0x7e {
			if hasParam {
				params = append(params, currentParam)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		}

		// Unexpected character
		return KeyNone, ModNone, 0
	}

	// Incomplete sequence
	return KeyNone, ModNone, 0
}

// parseCSI parses a complete CSI sequence given parameters and final byte.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone

	// Extract modifier from params (xterm-style: CSI 1;mod X)
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case '~':
		// Extended keys: CSI n ~
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1:
			return KeyHome, mod
		case 2:
			return KeyInsert, mod
		case 3:
			return KeyDelete, mod
		case 4:
			return KeyEnd, mod
		case 5:
			return KeyPageUp, mod
		case 6:
			return KeyPageDown, mod
		}
	case 'Z':
		// Backtab (Shift+Tab) - CSI Z
		return KeyTab, ModShift
	}

	return KeyNone, ModNone
}

// parseSS3 parses an SS3 sequence final byte.
func parseSS3(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}

	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// findIncompleteUTF8Suffix finds any incomplete UTF-8 sequence at the end of data.
// Returns the incomplete bytes (if any).
func findIncompleteUTF8Suffix(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	// Check last 1-3 bytes for incomplete UTF-8 sequences
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]

		// If this is a UTF-8 leading byte, check if sequence is complete
		if b >= 0xC0 {
			var expectedLen int
			switch {
			case b < 0xE0:
				expectedLen = 2
			case b < 0xF0:
				expectedLen = 3
			default:
				expectedLen = 4
			}

			if i < expectedLen {
				return data[len(data)-i:]
			}
			return nil
		}

		// Continuation byte (0x80-0xBF): keep looking for the lead byte
		if b >= 0x80 && b < 0xC0 {
			continue
		}

		// ASCII byte - no incomplete sequence
		return nil
	}

	return nil
}
