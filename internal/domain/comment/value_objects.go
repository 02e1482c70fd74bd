package comment

import "strings"

const MaxTextLength = 2000

type Text struct {
	text string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if len([]rune(t)) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: t}, nil
}

func (t Text) String() string { return t.text }
