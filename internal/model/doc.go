// Package model defines the value types shared by the analyzer, the report
// writers and the CLI.
//
// This package contains the following main types:
//   - Number: a tagged numeric value (Integer or Real) classified once at input
//   - PropertyReport: the basic arithmetic attributes of one Number
//   - Report: the comprehensive analysis of one user input
//   - PrimeRange and Divisibility: results of the range and GCD/LCM tools
//
// Design decision: We separate models into their own package so that the
// analysis package, the report writers and the interactive session can share
// them without import cycles. Every type is an immutable value computed fresh
// per query; nothing here is persisted.
package model
