// Package messages holds the user-facing strings of the sign-in screens.
//
// Strings live in an embedded YAML catalogue keyed by language code and then
// by dot-separated key ("login.email_invalid"). Requested languages are
// resolved with golang.org/x/text/language matching, so "es-MX" or an
// Accept-Language value such as "fr;q=0.9, es;q=0.8" pick the closest
// supported catalogue, falling back to English.
//
//	msgs := messages.Default().Login("es")
//	rules := []validator.Rule{validator.Required{Message: msgs.EmailNotEmpty}}
//
// Templates may contain %{name} placeholders, filled by T from name, value
// argument pairs.
package messages
