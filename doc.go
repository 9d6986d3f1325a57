// Package exprtree evaluates arithmetic expressions as float64.
//
// An expression is scanned into tokens, reordered into postfix form with the
// shunting-yard algorithm, and assembled into a binary tree which can be
// evaluated any number of times. "2^3^2" is "2^(3^2)", "10-3-2" is
// "(10-3)-2", and "-2^2" is "-(2^2)". Functions take one parenthesized
// argument, as in "ln(2.7)" or "sin(pi/2)". The names pi and e are constants.
//
// Characters that are not part of the grammar, including whitespace, are
// skipped by default. The Strict option rejects everything but whitespace.
//
package exprtree
