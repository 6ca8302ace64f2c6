package app

import "github.com/dshills/kiln/internal/renderer/backend"

// PromptCallback is called after every key handled by a prompt with the
// current input and the key event.
type PromptCallback func(input string, ev backend.Event)

// Prompt reads a line of input on the message bar. format must contain one
// %s verb for the input so far. It returns the input on Enter, or "" when
// cancelled with Escape. Enter on empty input is ignored. Resizes and
// configuration reloads are processed while the prompt is open.
func (e *Editor) Prompt(format string, callback PromptCallback) (string, error) {
	var buf []rune

	for {
		e.SetStatusMessage(format, string(buf))
		e.Refresh()

		ev, err := e.backend.PollEvent()
		if err != nil {
			e.log.Error("event source failed in prompt: %v", err)
			return "", inputError(err)
		}
		if ev.Type != backend.EventKey {
			e.handleOutOfBand(ev)
			continue
		}

		switch {
		case ev.Key == backend.KeyBackspace || ev.Key == backend.KeyDelete || ev.Key == backend.KeyCtrlH:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case ev.Key == backend.KeyEscape:
			e.SetStatusMessage("")
			if callback != nil {
				callback(string(buf), ev)
			}
			return "", nil

		case ev.Key == backend.KeyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(string(buf), ev)
				}
				return string(buf), nil
			}

		case isInsertable(ev):
			buf = append(buf, ev.Rune)
		}

		if callback != nil {
			callback(string(buf), ev)
		}
	}
}
