package wordbook

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// normalizeTag returns the canonical lowercase form of a BCP 47 tag, so
// "en_IN", "EN-in" and "en-IN" all read "en-in". Tags x/text cannot parse
// are only trimmed and lowercased.
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if t, err := language.Parse(tag); err == nil {
		tag = t.String()
	}
	return strings.ToLower(tag)
}

// acceptedLanguages returns the normalized tags of an Accept-Language header
// by descending quality. A header x/text cannot parse yields nothing.
func acceptedLanguages(header string) []string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	languages := make([]string, 0, len(tags))
	for _, t := range tags {
		languages = append(languages, strings.ToLower(t.String()))
	}
	return languages
}

// resolve finds the pack serving lang: the exact tag, then the base language
// of a regional tag ("en-us" -> "en"), then a regional pack of the base
// language ("hi" or "hi-in" -> "hi-latn").
func resolve(lang string, supported []string) (string, bool) {
	if slices.Contains(supported, lang) {
		return lang, true
	}
	base, _, _ := strings.Cut(lang, "-")
	if slices.Contains(supported, base) {
		return base, true
	}
	for _, s := range supported {
		if strings.HasPrefix(s, base+"-") {
			return s, true
		}
	}
	return "", false
}

// negotiate walks the header in quality order and returns the pack of the
// first language that resolves.
func negotiate(header string, supported []string, defaultLang string) string {
	for _, lang := range acceptedLanguages(header) {
		if pack, ok := resolve(lang, supported); ok {
			return pack
		}
	}
	return defaultLang
}
