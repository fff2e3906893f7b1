package game

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PickupEvent is published when the player touches a stick. The stick entity
// has already been despawned by the time the event is processed.
type PickupEvent struct {
	Stick donburi.Entity
}

// PickupEventType carries pickup events from the collision system to the
// resolution handler within a frame.
var PickupEventType = events.NewEventType[PickupEvent]()
