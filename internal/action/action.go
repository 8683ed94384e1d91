package action

// Category classifies an action by the state slice it targets.
type Category int

const (
	// CategorySubject mutates the subject list.
	CategorySubject Category = iota

	// CategoryNote mutates a subject's notes.
	CategoryNote

	// CategoryPage mutates a note's pages.
	CategoryPage

	// CategoryTemplate changes template assignments on content entities.
	CategoryTemplate

	// CategoryNavigation mutates UI state.
	CategoryNavigation

	// CategorySettings mutates user settings.
	CategorySettings
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategorySubject:
		return "subject"
	case CategoryNote:
		return "note"
	case CategoryPage:
		return "page"
	case CategoryTemplate:
		return "template"
	case CategoryNavigation:
		return "navigation"
	case CategorySettings:
		return "settings"
	default:
		return "unknown"
	}
}

// MutatesContent reports whether actions of this category target the
// content slice. Content mutations touch the owning subject's LastModified
// timestamp and trigger the persistence middleware.
func (c Category) MutatesContent() bool {
	switch c {
	case CategorySubject, CategoryNote, CategoryPage, CategoryTemplate:
		return true
	default:
		return false
	}
}

// Action is an immutable description of an intended state mutation,
// consumed only by the reducer pipeline.
type Action interface {
	// Category returns the action's taxonomy category.
	Category() Category

	// Description returns a human-readable summary for per-dispatch
	// diagnostic logging.
	Description() string
}
