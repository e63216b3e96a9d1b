// Package dsl parses the textual popup dialects into the canonical tree and
// serializes the tree back to the structured dialect.
//
// Three dialects are supported next to JSON and YAML:
//
//   - natural:    confirm Delete file? with Yes or No
//   - structured: Settings:
//     Volume: 0-100 = 75
//     [Save | Cancel]
//   - classic:    popup "Title" [ slider "Energy" 0..10 default = 5 ... ]
//
// Parse inspects raw input and picks the right decoder by fixed precedence;
// once a dialect's outer envelope is recognized its errors are final, so a
// partial match never masks another dialect's error message.
package dsl
