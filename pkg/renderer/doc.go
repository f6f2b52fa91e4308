// Package renderer turns an emitter event stream into text.
//
// The renderer is the only place where line width matters. It uses the classic
// measure-then-commit discipline: when a group starts, its flat width is measured by scanning
// forward to the matching GroupEnd (stopping early once it is known not to fit), and the group
// is then rendered entirely flat or entirely broken. Nested groups inside a broken group are
// measured again from wherever they start, so they can still stay on one line.
//
//	out, err := renderer.RenderString(events, renderer.DefaultConfig())
//
// Token widths are display widths, so wide characters count as two columns. Whitespace is
// written lazily and no rendered line ends with spaces or tabs.
package renderer
