// Package path provides an immutable representation of vector paths,
// built from lines and quadratic and cubic Béziers, together with the
// geometric queries renderers and editors need.
//
// # Paths and contours
//
// A [Path] is a sequence of [Contour]s, each a connected run of curve
// segments that may or may not be closed. Paths are constructed with a
// [Builder] or parsed from text with [Parse]; once constructed they
// never change, which makes every query safe for concurrent use.
//
// Points on a path are addressed with [Location] values: a contour
// index, an operation index within the contour, and a parameter t
// within the operation. [Path.ClosestPoint], [Path.StartPoint] and
// [Path.EndPoint] produce locations; [Path.PointAt], [Path.TangentAt]
// and [Path.CurvatureAt] answer questions about them.
//
// # Queries
//
// [Path.InFill] decides whether a point is inside the area filled by a
// path, under either fill rule ([NonZero] or [EvenOdd]). [Path.Bounds]
// and [Path.StrokeBounds] compute conservative bounding boxes, the
// latter accounting for a [Stroke]'s width, caps and joins.
//
// # Decomposition
//
// [Path.ForEach] iterates over the operations of a path. Callers that
// cannot handle all curve types can restrict the iteration with
// [ForEachFlags]; curves are then elevated or approximated by simpler
// segments within a caller-provided tolerance.
//
// # Text format
//
// The text format is a superset of SVG path syntax. [Parse] reads it,
// [Path.String] writes it, and parsing a printed path reproduces the
// path exactly. Elliptical arcs are lowered to cubic Béziers when the
// path is built, so a path never stores arcs.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [SVG implementation notes] for the conversion of arc commands
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [SVG implementation notes]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package path
