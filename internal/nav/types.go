package nav

// Direction represents movement directions
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Effect describes the side effects requested by one transition. The
// navigator never scrolls anything itself; ScrollIntoView is a
// directive for the rendering layer.
type Effect struct {
	ScrollIntoView bool
}
