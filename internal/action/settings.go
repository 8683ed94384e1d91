package action

import "fmt"

// SetAutoSaveEnabled toggles the debounced content save middleware.
type SetAutoSaveEnabled struct {
	Enabled bool
}

// Category implements Action.
func (SetAutoSaveEnabled) Category() Category { return CategorySettings }

// Description implements Action.
func (a SetAutoSaveEnabled) Description() string {
	return fmt.Sprintf("settings.autosave enabled=%t", a.Enabled)
}

// SetThumbnailsEnabled toggles note thumbnail generation.
type SetThumbnailsEnabled struct {
	Enabled bool
}

// Category implements Action.
func (SetThumbnailsEnabled) Category() Category { return CategorySettings }

// Description implements Action.
func (a SetThumbnailsEnabled) Description() string {
	return fmt.Sprintf("settings.thumbnails enabled=%t", a.Enabled)
}

// SetDebugLogging toggles per-dispatch logging of action descriptions.
type SetDebugLogging struct {
	Enabled bool
}

// Category implements Action.
func (SetDebugLogging) Category() Category { return CategorySettings }

// Description implements Action.
func (a SetDebugLogging) Description() string {
	return fmt.Sprintf("settings.debug enabled=%t", a.Enabled)
}

// SetDefaultTemplate changes the template applied to newly created notes.
type SetDefaultTemplate struct {
	TemplateID string
}

// Category implements Action.
func (SetDefaultTemplate) Category() Category { return CategorySettings }

// Description implements Action.
func (a SetDefaultTemplate) Description() string {
	return fmt.Sprintf("settings.default-template template=%s", a.TemplateID)
}
