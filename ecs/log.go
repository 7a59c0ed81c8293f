package ecs

import "github.com/rs/zerolog"

// LogWorld emits a single event describing the world: issued entity count and
// one dict per tracked component type with its live binding count and pool
// depth. Types appear sorted by name so output is stable.
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	event := logger.WithLevel(level)
	event.Int("entities_issued", w.EntityCount())
	event.Int("component_types", len(w.stores))

	arr := zerolog.Arr()
	for _, typ := range w.Registered() {
		store := w.stores[typ]
		dict := zerolog.Dict().
			Str("component", typ.String()).
			Int("bindings", store.len()).
			Int("pooled", store.poolLen())
		arr = arr.Dict(dict)
	}
	event.Array("components", arr)
	event.Send()
}
