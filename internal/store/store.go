package store

// Slot keys for everything the app persists. One key per logical model
// snapshot, matching the keys the data lives under on devices that ran
// earlier builds.
const (
	KeyTeams      = "scouting-teams"
	KeyRecords    = "scouting-data"
	KeyDarkMode   = "scouting-darkmode"
	KeyBackground = "scouting-bgcolor"
	KeyDeleteCode = "scouting-delete-code"

	// KeyLastReload is written by the frontend reload heuristic; the Go
	// side never reads it but reserves the slot name.
	KeyLastReload = "scouting-last-reload"
)

// Store is a durable string-keyed slot store. Writes are best-effort:
// when the backing store is unavailable the in-memory models stay
// authoritative for the session and silently lose durability.
type Store interface {
	// Read returns the value for key, or ok=false if the slot is absent
	// or the backing store cannot be reached.
	Read(key string) (value string, ok bool)

	// Write replaces the value for key. Failures are swallowed.
	Write(key, value string)
}
