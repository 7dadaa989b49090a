package voice

import "strings"

// Profile is the locale and neural voice used for one spoken language.
type Profile struct {
	Code   string
	Locale string
	Voice  string
}

var DefaultProfile = Profile{Code: "en", Locale: "en-US", Voice: "en-US-AriaNeural"}

var profiles = map[string]Profile{
	"en": DefaultProfile,
	"fr": {Code: "fr", Locale: "fr-FR", Voice: "fr-FR-DeniseNeural"},
	"hi": {Code: "hi", Locale: "hi-IN", Voice: "hi-IN-MadhurNeural"},
	"es": {Code: "es", Locale: "es-ES", Voice: "es-ES-ElviraNeural"},
	"de": {Code: "de", Locale: "de-DE", Voice: "de-DE-KatjaNeural"},
}

// ProfileFor accepts a bare language code ("fr") or a locale tag ("fr-CA")
// and falls back to DefaultProfile for anything it does not know.
func ProfileFor(tag string) Profile {
	primary := strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(primary, "-_"); i >= 0 {
		primary = primary[:i]
	}
	if p, ok := profiles[primary]; ok {
		return p
	}
	return DefaultProfile
}
