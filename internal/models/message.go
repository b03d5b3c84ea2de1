package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role identifies who a chat turn is attributed to
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message in the conversation. Turns are never mutated once appended.
type ChatTurn struct {
	Text string
	Role Role
}

// IsUser reports whether the turn was written by the user
func (t ChatTurn) IsUser() bool {
	return t.Role == RoleUser
}

// Avatar returns the short label drawn next to the turn: the upper-cased
// first letter of the text for user turns, "ai" for assistant turns.
func (t ChatTurn) Avatar() string {
	if !t.IsUser() {
		return AssistantAvatar
	}
	text := strings.TrimLeftFunc(t.Text, unicode.IsSpace)
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
