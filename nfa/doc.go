// Package nfa implements regular-expression matching by simulating a
// nondeterministic finite automaton, the Thompson construction.
//
// Compile turns a pattern into an epsilon-transition digraph with one
// state per pattern position plus an accept state. Recognizes then
// alternates two cheap steps over the text: follow every epsilon
// edge (a multi-source reachability pass) and consume one input byte
// from every active state. No backtracking, so matching is
// O(len(text) · m · edges) worst case and immune to the catastrophic
// patterns that bite backtracking engines.
//
// Supported syntax: concatenation, alternation '|', closures '*',
// '+', '?', grouping '(' ')', and the '.' wildcard. The pattern must
// match the whole input; anchor-free search is a '.*' prefix/suffix
// away.
package nfa
