// Package viz is the terminal front end for a playback session.
//
// The particle is drawn onto a braille [Canvas] through [Surface], which
// implements playback.Surface by stretching the world viewport over the
// canvas dots. [Model] is a Bubble Tea program that ticks the session,
// forwards key and mouse input, and shows a side panel with the playback
// state and history plots.
//
// # Key Bindings
//
//	Space    - Pause/Resume
//	. / n    - Step one frame while paused
//	[ ] ← →  - Scrub back/forward
//	Home End - Scrub to the first/last frame
//	Enter    - Release the scrub
//	R        - Reset
//	O        - Toggle rings
//	C        - Toggle rainbow mode
//	+ / -    - Time scale
//	T        - Cycle color themes
//	?        - Full help
//
// The scrub bar under the canvas can also be dragged with the mouse.
package viz
