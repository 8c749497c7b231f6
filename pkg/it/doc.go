// Package it builds small accessor and transformer functions by chaining
// operations onto an identity pipeline, so callers do not have to write one-off
// closures for map, filter, sort and reduce helpers.
//
//	lastName := it.Get("Last").RunIfTruthy(it.Invoke("ToLower")).DefaultTo("none")
//	names := it.MapOver(lastName).Call(people)
//
// A Pipeline is an immutable value. Every operation returns a new Pipeline that
// runs the previous steps and then the new one, and every Pipeline carries the
// whole operation set, so chains can be extended without limit.
//
// Steps receive the subject and a receiver. The receiver is passed explicitly
// with CallOn or Bind and reaches every step of the chain unchanged; Self
// starts a chain that reads from the receiver instead of the subject.
//
// A selector argument (to RunIfTruthy, Negate, MapOver, SelectWhere, SortBy,
// CompareBy, Compose...) is resolved once, when the step is built: a string
// means "get that property", a Pipeline or Step runs with the same receiver,
// and any other one-argument Go func is called with the subject.
//
// Key operations:
// - Identity/Self/Decorate/Compose: the composition core
// - Get/Set/Delete: keyed access
// - Invoke/Post/ApplyArgs/CallWithArgs: method and function calls
// - DefaultTo/RunIfTruthy/Negate/SideEffect/InstantiateAs: conditionals and wrappers
// - MapOver/Pluck/SelectWhere/ReduceWith/SortBy: sequence helpers
// - Eq/Neq/StrictEq/StrictNeq/Gt/Gte/Lt/Lte/Add/Sub/Mul/Div: binary operators
// - CompareBy: comparators for sorting
//
// Steps do not recover from bad subjects: they panic with a *value.Fault.
// Try runs a pipeline and returns such a fault as an error.
package it
