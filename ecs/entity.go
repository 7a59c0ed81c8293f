package ecs

// EntityID identifies an entity. IDs are issued by World.CreateEntity, are
// strictly increasing, and are never reused; an entity carries no data of its
// own beyond its component bindings.
type EntityID uint64

// WorldEntityID is the reserved entity created by NewWorld. It exists to hold
// singleton components bound through BindWorld, but is otherwise an ordinary
// entity usable with every World operation.
const WorldEntityID EntityID = 1
