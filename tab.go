package dockspace

// TabKind classifies a tab once, at construction. Rendering dispatches
// on the kind, never by re-matching the name per frame.
type TabKind int

const (
	KindGeneric TabKind = iota
	KindViewport
	KindSceneControl
)

// Well-known tab names. NewTab maps these to their dedicated kinds;
// every other name produces a generic label tab.
const (
	NameViewport     = "Viewport"
	NameSceneControl = "Scene Control"
)

// Tab is a named panel in the docking layout. It is a value type:
// copying a Tab is cheap and carries no hidden state.
type Tab struct {
	Name string
	Kind TabKind
}

// NewTab builds a tab, deciding its kind from the name.
func NewTab(name string) Tab {
	switch name {
	case NameViewport:
		return Tab{Name: name, Kind: KindViewport}
	case NameSceneControl:
		return Tab{Name: name, Kind: KindSceneControl}
	default:
		return Tab{Name: name, Kind: KindGeneric}
	}
}
