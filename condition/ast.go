// Package condition implements the display guard expression language used by
// the "when" field of popup elements: @id references, boolean operators,
// comparisons, and the count/selected/any/all helper functions.
package condition

// Expr is one node of a parsed guard expression.
type Expr interface{ isExpr() }

// Ref is an @id reference resolved against the value snapshot.
type Ref struct{ ID string }

// Number is a numeric literal.
type Number struct{ Value float64 }

// Text is a string literal. Bare identifiers outside call position also
// parse as Text, so `theme == dark` works without quotes.
type Text struct{ Value string }

// Not negates the truthiness of its operand.
type Not struct{ X Expr }

// Binary applies an operator: "&&", "||", ">", "<", ">=", "<=", "==", "!=".
type Binary struct {
	Op   string
	L, R Expr
}

// Call invokes a helper: count(@id), selected(@id, value), any(...), all(...).
type Call struct {
	Name string
	Args []Expr
}

func (Ref) isExpr()    {}
func (Number) isExpr() {}
func (Text) isExpr()   {}
func (Not) isExpr()    {}
func (Binary) isExpr() {}
func (Call) isExpr()   {}
