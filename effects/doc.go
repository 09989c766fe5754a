// Package effects is the handler runtime behind the effectful collaborators of
// the stream package.
//
// A stream step is an effect: a function of a context.Context. Anything that
// step needs from the outside world, such as reading a line, writing a line,
// looking up configuration or logging, is delegated to a handler registered in
// that context.
//
// # What is an Effect?
//
// An effect is any logic that:
//   - depends on runtime context,
//   - causes external interaction,
//   - or violates pure function guarantees (Who, What, When, Where).
//
// # How does it work?
//
// Handlers are registered via `WithXxxEffectHandler(ctx)` and perform effects
// through `PerformResumableEffect` or `FireAndForgetEffect`. Each handler owns
// its workers; the teardown returned on registration stops them and gives back
// the context the handler was registered on.
//
// Resumable handlers reply once per request. Single-worker handlers serve
// requests in arrival order; partitionable handlers hash PartitionKey() with
// xxhash so requests sharing a key keep their order.
//
// Built-in handlers live in the sub-packages log, binding and lineio.
//
// Example:
//
//	ctx, end := binding.WithEffectHandler(ctx, 1, 1, map[string]any{"greeting": "hi"})
//	defer end()
//
//	greeting, err := binding.GetFromBindingEffect[string](ctx, "greeting")
package effects
