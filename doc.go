// Package reps picks the renderer ("rep") for an arbitrary runtime value,
// including grips: handles that describe objects living in another process.
//
// # Concept
//
// Every rep is a descriptor with a probe and a render function. Reps live in an
// ordered registry and the order is the priority: for a given value the first
// rep whose probe accepts it wins. Before scanning, the value gets an effective
// type label:
//
//   - boxed strings are "string";
//   - objects carrying a "type" shape hint take that hint, unless NoGrip is set;
//   - anything else takes its native type ("object", "number", "function", ...);
//   - grips always end up as their class, whatever NoGrip says.
//
// A probe that panics is logged and skipped. When no rep accepts the value the
// caller's default rep renders it, so Render always produces output.
//
// # Usage
//
//	out := reps.Render(map[string]any{
//		"actor": "server1.conn1.obj31",
//		"class": "RegExp",
//		"displayString": "/a.*/g",
//	}, rep.Props{Mode: rep.ModeShort})
//	// out == "/a.*/g"
//
// Applications that need their own reps build an Engine:
//
//	eng := reps.New(reps.WithLogger(logger))
//	err := eng.Register(myRep, registry.Before("Grip"))
package reps
