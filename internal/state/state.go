package state

// AppState is the composite application state. The three sub-states are
// independent: every action mutates at most one of them.
type AppState struct {
	// Content is the domain entity tree.
	Content ContentState

	// UI is the navigation and presentation state.
	UI UIState

	// Settings holds user-facing feature toggles.
	Settings SettingsState
}

// Default returns the initial state for a fresh application launch, before
// persisted content is loaded.
func Default() AppState {
	return AppState{
		UI: UIState{
			Nav:            NavSubjectList,
			SidebarVisible: true,
		},
		Settings: SettingsState{
			AutoSaveEnabled:   true,
			ThumbnailsEnabled: true,
		},
	}
}
