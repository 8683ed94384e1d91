package state

// SettingsState holds user-facing feature toggles, persisted key/value
// style by the persistence collaborator.
type SettingsState struct {
	// AutoSaveEnabled controls the debounced content save middleware.
	AutoSaveEnabled bool

	// ThumbnailsEnabled controls note thumbnail generation.
	ThumbnailsEnabled bool

	// DebugLogging enables per-dispatch logging of action descriptions.
	DebugLogging bool

	// DefaultTemplateID names the template applied to new notes.
	DefaultTemplateID string
}
