package mytelegram

import (
	"regexp"
	"strings"
)

var (
	phoneJunkRe     = regexp.MustCompile(`[^\d+]`)
	forwardedCodeRe = regexp.MustCompile(`This is your login code:\s*([a-zA-Z0-9]+)`)
	bareCodeRe      = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// NormalizePhone converts user input into a +-prefixed international
// number. Accepted forms: already international ("+989..."), 00-prefixed
// ("00989..."), or an 11-digit domestic mobile number ("09...") which is
// rewritten to +98. Everything else is ErrInvalidPhone.
func NormalizePhone(s string) (string, error) {
	s = phoneJunkRe.ReplaceAllString(strings.TrimSpace(s), "")
	switch {
	case strings.HasPrefix(s, "+"):
		return s, nil
	case strings.HasPrefix(s, "00"):
		return "+" + s[2:], nil
	case strings.HasPrefix(s, "09") && len(s) == 11:
		return "+98" + s[1:], nil
	default:
		return "", ErrInvalidPhone
	}
}

// NormalizeCode validates a login code. It accepts either a forwarded
// Telegram message containing "This is your login code: <token>" or a
// bare alphanumeric token of 6 to 14 characters.
func NormalizeCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if m := forwardedCodeRe.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	if bareCodeRe.MatchString(s) && len(s) > 5 && len(s) < 15 {
		return s, true
	}
	return "", false
}
