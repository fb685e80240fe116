package constant

// SharedWorldID is the distinguished public world. It is always editable and
// is the fallback target for stickers created without an explicit world.
const SharedWorldID = 1

const (
	AccessCodeLength = 10

	DefaultScale = 1.0
	ScaleStep    = 0.1
	ScaleMin     = 0.5
	ScaleMax     = 3.0
)

// HeaderSessionID carries the page-session identifier used by the access gate.
const HeaderSessionID = "X-Session-Id"
