package tui

// ReleaseMsg carries the newest published release tag.
type ReleaseMsg struct {
	Tag string
	Err error
}
