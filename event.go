package pager

// Action identifies the intent of a navigation event.
type Action string

const (
	ActionPrev     Action = "prev"
	ActionNext     Action = "next"
	ActionHome     Action = "home"
	ActionClose    Action = "close"
	ActionJumpOpen Action = "jump-open"
)

// Event is one input delivered by an EventSource. Action tags outside
// the constants above are delivered as-is; the controller drops them.
type Event struct {
	ActorID string
	Action  Action
}
