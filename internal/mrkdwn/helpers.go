package mrkdwn

import "strings"

// Taken from https://api.slack.com/reference/surfaces/formatting#escaping.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func Escape(input string) string {
	return escaper.Replace(input)
}
