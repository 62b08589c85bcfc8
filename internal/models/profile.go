package models

// UserProfile holds the local user identity. A non-empty name gates
// access to the tracked application; there is no authentication.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SyncConfig holds the remote spreadsheet endpoints. SheetURL is the
// human-reference spreadsheet link; AppURL is the actual push endpoint.
// When AppURL is empty, sync is a no-op.
type SyncConfig struct {
	SheetURL string `json:"sheet_url"`
	AppURL   string `json:"app_url"`
}

// Configured reports whether an actual push endpoint has been set.
func (c SyncConfig) Configured() bool {
	return c.AppURL != ""
}
