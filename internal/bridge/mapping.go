package bridge

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/inklet/inklet/internal/event/events"
)

// Legacy notification names. These literals are the entire remaining
// surface of the old mechanism.
const (
	NameDrawingDidStart        = "drawingDidStart"
	NameDrawingDidEnd          = "drawingDidEnd"
	NameThumbnailDidInvalidate = "thumbnailDidInvalidate"
	NameAppStateDidChange      = "appStateDidChange"
	NameContentDidSave         = "contentDidSave"
)

// DefaultMappings is the fixed catalog bridged during migration. Drawing
// events are bridged both ways because legacy canvas code still broadcasts
// them; everything else flows typed-to-legacy only.
func DefaultMappings() []Mapping {
	return []Mapping{
		NewMapping(NameDrawingDidStart, Both, encodeDrawingStarted, decodeDrawingStarted),
		NewMapping(NameDrawingDidEnd, Both, encodeDrawingEnded, decodeDrawingEnded),
		NewMapping[events.ThumbnailInvalidated](NameThumbnailDidInvalidate, TypedToLegacy, encodeThumbnailInvalidated, nil),
		NewMapping[events.StateChanged](NameAppStateDidChange, TypedToLegacy, encodeStateChanged, nil),
		NewMapping[events.SaveCompleted](NameContentDidSave, TypedToLegacy, encodeSaveCompleted, nil),
	}
}

func emptyPayload() Payload {
	return Payload(`{}`)
}

func setField(p Payload, key string, value any) Payload {
	out, err := sjson.SetBytes(p, key, value)
	if err != nil {
		return p
	}
	return out
}

func fieldUUID(p Payload, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(gjson.GetBytes(p, key).String())
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func encodeDrawingStarted(ev events.DrawingStarted) Payload {
	return setField(emptyPayload(), "pageID", ev.PageID.String())
}

func decodeDrawingStarted(p Payload) (events.DrawingStarted, bool) {
	id, ok := fieldUUID(p, "pageID")
	if !ok {
		return events.DrawingStarted{}, false
	}
	return events.DrawingStarted{PageID: id}, true
}

func encodeDrawingEnded(ev events.DrawingEnded) Payload {
	return setField(emptyPayload(), "pageID", ev.PageID.String())
}

func decodeDrawingEnded(p Payload) (events.DrawingEnded, bool) {
	id, ok := fieldUUID(p, "pageID")
	if !ok {
		return events.DrawingEnded{}, false
	}
	return events.DrawingEnded{PageID: id}, true
}

func encodeThumbnailInvalidated(ev events.ThumbnailInvalidated) Payload {
	return setField(emptyPayload(), "noteID", ev.NoteID.String())
}

// encodeStateChanged flattens a state summary rather than the full tree:
// the legacy observers only ever read counts and navigation.
func encodeStateChanged(ev events.StateChanged) Payload {
	p := emptyPayload()
	p = setField(p, "subjectCount", len(ev.State.Content.Subjects))
	p = setField(p, "noteCount", ev.State.Content.NoteCount())
	p = setField(p, "pageCount", ev.State.Content.PageCount())
	p = setField(p, "nav", ev.State.UI.Nav.String())
	p = setField(p, "searchText", ev.State.UI.SearchText)
	return p
}

func encodeSaveCompleted(ev events.SaveCompleted) Payload {
	p := setField(emptyPayload(), "slice", ev.Slice)
	p = setField(p, "ok", ev.Err == nil)
	if ev.Err != nil {
		p = setField(p, "error", ev.Err.Error())
	}
	return p
}
