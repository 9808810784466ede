// Package indent infers the indentation convention of a text from the
// leading whitespace of its lines.
//
// The pipeline has three stages. [Collect] samples up to [SampleCap]
// indented lines and records whether tabs were seen and which space runs
// occurred. [Infer] reduces those runs to a single space unit and derives a
// tab width. [Format] renders the result for a given [Mode]. [Detect] runs
// all three.
package indent
