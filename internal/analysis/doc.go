// Package analysis implements the number property library: primality,
// Armstrong, perfect, Fibonacci and palindrome predicates, digit
// arithmetic, factor enumeration, GCD/LCM and the aggregators that combine
// them into a model.Report.
//
// Every function is pure and safe for concurrent use. Inputs outside a
// predicate's domain (a Real where an integer is required, a negative
// number, zero) produce false, an empty result or a not-applicable marker;
// nothing in this package returns an error except Analyze, which parses
// raw user text.
//
// # Domain
//
// Integer predicates operate on int64. Integral values outside that range
// are classified as model.KindReal by the model package and are therefore
// rejected by integer-only predicates rather than silently rounded.
//
// Trial-division loops run to √n, so the worst case for a large prime near
// math.MaxInt64 is about three billion iterations for IsPrime. That is the
// documented cost of staying within machine integers.
package analysis
