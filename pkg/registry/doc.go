/*
Package registry keeps the ordered list of rep descriptors that dispatch scans.

A Registry is an immutable snapshot. Build one once at startup with New, or
with a Builder when reps need to be placed relative to each other:

	b := registry.NewBuilder(base)
	_ = b.Register(myRep, registry.Before("Grip"))
	reg, err := b.Build()

Processes that accept new reps while running hold a Live value. Update builds
the next snapshot under a writer lock and publishes it atomically, so a scan
that already loaded a snapshot keeps iterating it unchanged.
*/
package registry
