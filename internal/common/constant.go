// Package common contains shared constants and sentinel errors used across
// emergency15 client components.
package common

// Keys of the persisted key/value store. Each state machine owns its keys
// exclusively.
const (
	// AuthKey holds the JSON-encoded signed-in user, bearer token included.
	AuthKey = "@authdata"
	// OnBoardedKey holds OnBoardedSentinel once the welcome slides were seen.
	OnBoardedKey = "@onBoarded"
	// LanguageKey holds the selected language code.
	LanguageKey = "@language"
)

// OnBoardedSentinel is the value written under OnBoardedKey.
const OnBoardedSentinel = "onBoarded"

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request identifier for server-side tracing.
const RequestIDHeaderName = "X-Request-ID"
