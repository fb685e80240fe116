package dto

// BoardEventMessage is published on the in-process event bus whenever a
// sticker is placed or mutated.
type BoardEventMessage struct {
	Type      string `json:"type"` // "placed", "moved", "scaled", "locked", "removed"
	StickerId int    `json:"sticker_id"`
	WorldId   int    `json:"world_id"`
}

const (
	BoardEventPlaced  = "placed"
	BoardEventMoved   = "moved"
	BoardEventScaled  = "scaled"
	BoardEventLocked  = "locked"
	BoardEventRemoved = "removed"
)
