// Package i18n renders status kinds into user-facing text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Services return these as status kinds; parameters are
// substituted with fmt verbs.
const (
	LoginFailed        = "auth.login_failed"
	UsernameTaken      = "auth.username_taken"
	Registered         = "auth.registered"
	LoggedOut          = "auth.logged_out"
	RoomCreated        = "room.created"
	RoomUpdated        = "room.updated"
	BookingSaved       = "booking.saved"
	BookingConflict    = "booking.conflict"
	CancelDone         = "cancel.done"
	CancelDenied       = "cancel.denied"
	CancelPast         = "cancel.past"
	TodoCreated        = "todo.created"
	TodoCompleted      = "todo.completed"
	TableRejected      = "explorer.table_rejected"
	ValidationFailed   = "validation.failed"
	InternalError      = "error.internal"
	AuthRequired       = "error.auth_required"
	AccessDenied       = "error.access_denied"
	NotFound           = "error.not_found"
	DeploySucceeded    = "deploy.succeeded"
	DeployUnauthorized = "deploy.unauthorized"
	DeployFailed       = "deploy.failed"
)

var entries = map[language.Tag]map[string]string{
	language.German: {
		LoginFailed:        "Benutzername oder Passwort ist falsch.",
		UsernameTaken:      "Benutzername existiert bereits.",
		Registered:         "Konto wurde angelegt. Bitte einloggen.",
		LoggedOut:          "Du wurdest abgemeldet.",
		RoomCreated:        "Neues Zimmer %s wurde erfolgreich angelegt.",
		RoomUpdated:        "Zimmer %s existierte bereits, Daten wurden aktualisiert.",
		BookingSaved:       "Buchung erfolgreich gespeichert.",
		BookingConflict:    "Dieses Zimmer ist im gewählten Zeitraum bereits gebucht.",
		CancelDone:         "Buchung wurde erfolgreich storniert.",
		CancelDenied:       "Zugriff verweigert.",
		CancelPast:         "Vergangene Buchungen können nicht storniert werden.",
		TodoCreated:        "Aufgabe gespeichert.",
		TodoCompleted:      "Aufgabe erledigt.",
		TableRejected:      "Unbekannte Tabelle: %s",
		ValidationFailed:   "Ungültige Eingabe: %s",
		InternalError:      "Interner Serverfehler.",
		AuthRequired:       "Bitte zuerst einloggen.",
		AccessDenied:       "Zugriff verweigert.",
		NotFound:           "Nicht gefunden.",
		DeploySucceeded:    "Updated successfully",
		DeployUnauthorized: "Unauthorized",
		DeployFailed:       "Update failed",
	},
	language.English: {
		LoginFailed:        "Username or password is incorrect.",
		UsernameTaken:      "Username already exists.",
		Registered:         "Account created. Please log in.",
		LoggedOut:          "You have been logged out.",
		RoomCreated:        "Room %s was created.",
		RoomUpdated:        "Room %s already existed, its data was updated.",
		BookingSaved:       "Booking saved.",
		BookingConflict:    "This room is already booked in the selected period.",
		CancelDone:         "Booking cancelled.",
		CancelDenied:       "Access denied.",
		CancelPast:         "Past bookings cannot be cancelled.",
		TodoCreated:        "Todo saved.",
		TodoCompleted:      "Todo completed.",
		TableRejected:      "Unknown table: %s",
		ValidationFailed:   "Invalid input: %s",
		InternalError:      "Internal server error.",
		AuthRequired:       "Please log in first.",
		AccessDenied:       "Access denied.",
		NotFound:           "Not found.",
		DeploySucceeded:    "Updated successfully",
		DeployUnauthorized: "Unauthorized",
		DeployFailed:       "Update failed",
	},
}

// Supported lists the languages with a full catalog, default first.
var Supported = []language.Tag{language.German, language.English}

// Translator resolves message keys for a negotiated language.
type Translator struct {
	catalog *catalog.Builder
	matcher language.Matcher
}

func NewTranslator() (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return &Translator{
		catalog: b,
		matcher: language.NewMatcher(Supported),
	}, nil
}

// Negotiate picks the best supported language for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Text renders key with params in lang. Unknown keys come back verbatim.
func (t *Translator) Text(lang language.Tag, key string, params ...any) string {
	p := message.NewPrinter(lang, message.Catalog(t.catalog))
	return p.Sprintf(key, params...)
}
