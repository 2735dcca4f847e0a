// Package matrices provides the built-in substitution matrix registry.
//
// What:
//
//   - Matrix: an immutable named score table over a fixed ASCII residue
//     alphabet, with O(1) case-insensitive residue lookup. Matrix
//     implements scoring.SubstitutionScorer and is meant to be injected
//     into a scoring.Config by reference.
//   - Registry: BLOSUM62, PAM250, PAM1 and EDNAFULL, parsed once from
//     embedded data files at package init and read-only thereafter.
//
// Data format:
//
//	Whitespace-separated text. '#' starts a comment. The first data line
//	lists the alphabet; each following line repeats its residue label and
//	gives one score per alphabet position. The tokens "inf" and "-inf"
//	map to math.MaxInt32 and math.MinInt32, marking forbidden pairs that
//	must survive saturating accumulation (PAM1 uses "-inf").
//
// A malformed embedded table is a build-time integrity fault: package init
// panics rather than surfacing a runtime error.
//
// Errors:
//
//   - ErrUnknownMatrix: ByName was asked for a name not in the registry.
//   - scoring.ErrInvalidCharacter: a residue outside a matrix alphabet.
package matrices
