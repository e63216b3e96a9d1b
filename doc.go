// Package popupkit provides:
//
// - A canonical, strongly-typed popup element tree (PopupDefinition/Element)
// - Parsing of strict and ergonomic JSON plus YAML into that tree
// - Structure-preserving tree transforms (Other-option injection)
// - Initial state derivation (DeriveState) and result collapsing (Collapse)
// - A stable error model via Issues (path, code, message, position)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the textual dialect parsers under dsl/, the guard expression
//   language under condition/, wire message shapes under protocol/, and the
//   CLI under cmd/popupkit.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	def, err := dsl.Parse(raw)          // any dialect, JSON or YAML
//	def = popupkit.InjectOtherOptions(def)
//	st := popupkit.DeriveState(def)
//	... renderer mutates st ...
//	res := popupkit.Collapse(def, st)
package popupkit
