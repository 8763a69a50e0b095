// Package guestimport parses free-text guest lists pasted by promoters.
package guestimport

import (
	"regexp"
	"strings"
	"unicode"
)

// phone matches a Brazilian style number with optional country and area codes:
// 11999990000, (11) 98888-7777, +55 11 98888 7777
const phone = `(?:\+?\d{1,3}[\s.\-]?)?\(?\d{2}\)?[\s.\-]?\d{4,5}[\s.\-]?\d{4}`

var (
	// "Name <separators> phone" with the phone at the end of the token
	namePhoneRe = regexp.MustCompile(`^(.+?)[\s\-–—:|/]*(` + phone + `)$`)
	phoneOnlyRe = regexp.MustCompile(`^` + phone + `$`)
	splitRe     = regexp.MustCompile(`[\r\n,;]+`)
)

// Entry is one parsed guest
type Entry struct {
	Name     string `json:"name" example:"Carla"`
	WhatsApp string `json:"whatsapp,omitempty" example:"11988887777"`
	Line     int    `json:"line" example:"3"`
}

// Result holds the parsed guests and the tokens that could not be used
type Result struct {
	Entries []Entry  `json:"entries"`
	Skipped []string `json:"skipped,omitempty"`
}

// Parse splits text on newlines, commas and semicolons. A token ending in a
// phone number becomes "name + whatsapp"; a token that is only a phone number
// is attached to the previous guest when that guest has none yet; anything
// else is a name-only guest.
func Parse(text string) Result {
	var res Result
	line := 1
	prevAttachable := -1

	for _, rawLine := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		for _, token := range splitRe.Split(rawLine, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}

			if phoneOnlyRe.MatchString(token) {
				if prevAttachable >= 0 {
					res.Entries[prevAttachable].WhatsApp = digits(token)
					prevAttachable = -1
				} else {
					res.Skipped = append(res.Skipped, token)
				}
				continue
			}

			if m := namePhoneRe.FindStringSubmatch(token); m != nil {
				if name := cleanName(m[1]); hasLetter(name) {
					res.Entries = append(res.Entries, Entry{Name: name, WhatsApp: digits(m[2]), Line: line})
					prevAttachable = -1
					continue
				}
			}

			name := cleanName(token)
			if !hasLetter(name) {
				res.Skipped = append(res.Skipped, token)
				continue
			}
			res.Entries = append(res.Entries, Entry{Name: name, Line: line})
			prevAttachable = len(res.Entries) - 1
		}
		line++
		// a bare phone on the next line never belongs to this line's guest
		prevAttachable = -1
	}
	return res
}

func cleanName(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("-–—:|/.", r)
	})
	return strings.Join(strings.Fields(s), " ")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
