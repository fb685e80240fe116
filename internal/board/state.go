package board

import "github.com/meeralouise/my-reading-world/internal/dto"

// Phase tracks each sticker's position in the sync cycle. Phases are
// independent across stickers; one in-flight commit never blocks another.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	default:
		return "idle"
	}
}

// stickerState is the board's transient mirror of one server record. After an
// optimistic commit the view may diverge from the store until the next Load.
type stickerState struct {
	view  dto.StickerResponse
	phase Phase
}

// BookForm is one completed book-log submission.
type BookForm struct {
	Title      string
	Author     string
	ReaderName string
	DateRead   string
	ImageUrl   string
	XPosition  int
	YPosition  int
}
