// Package common holds what the approx provider modules share: parameter
// extraction, result construction and the numeric settings every tool runs
// with.
//
// Every approximation tool answers with the same three fields:
//   - result: the approximation
//   - reference: the math or gonum value it is measured against
//   - abs_error: |result - reference|
//
// JSON has no NaN or infinities, so non-finite values are sent as the
// strings "NaN", "+Inf" and "-Inf".
package common
