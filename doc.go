// Package px2vw rewrites absolute-length CSS declarations into
// viewport-relative units for responsive layouts.
//
// The pass operates on an already-parsed stylesheet tree (package
// csstree), mutates it in place, and reports non-fatal warnings on a
// Result:
//
//	root, err := csstree.Parse(src, "styles/app.css")
//	if err != nil { ... }
//	opts := px2vw.DefaultOptions()
//	opts.ViewportWidth = 750
//	result, err := px2vw.Transform(root, opts)
//	out := root.String()
//
// # Ignoring declarations
//
// A declaration can opt out of conversion with a marker comment, either
// on the line above or trailing on the same line:
//
//	/* px-to-viewport-ignore-next */
//	width: 10px;
//	height: 10px; /* px-to-viewport-ignore */
//
// Consumed markers are removed from the output. A trailing marker on its
// own line is a misuse: it is left in place, conversion proceeds, and a
// warning is attached to the result.
//
// # Landscape mode
//
// With Options.Landscape enabled, every eligible top-level rule gets a
// landscape-converted copy collected during the pass; after the whole
// tree has been walked the copies are flushed into a single trailing
// "@media (orientation: landscape)" block.
//
// # CLI Tool
//
// px2vw also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/px2vw/cmd/px2vw@latest
package px2vw
