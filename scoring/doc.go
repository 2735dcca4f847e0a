// Package scoring defines the scoring model for pairwise sequence
// alignment: substitution scoring, gap costs, and sequence validation.
//
// What:
//
//   - SubstitutionScorer abstracts residue-pair scoring. SimpleScorer
//     applies a case-insensitive match/mismatch rule; substitution-matrix
//     scorers (package matrices) delegate to a precomputed table.
//   - Config bundles a scorer with gap costs and enforces the linear gap
//     model (GapOpen must equal GapExtend).
//   - SatAdd / SatMul provide saturating 32-bit arithmetic so that
//     forbidden-pair sentinels (math.MinInt32) never wrap into attractive
//     scores during accumulation.
//
// Errors:
//
//   - ErrInvalidCharacter: a residue is absent from the active scorer's
//     alphabet. Returned as *InvalidCharacterError naming the byte.
//   - ErrAffineGap: GapOpen != GapExtend; affine penalties are unsupported
//     and rejected before any matrix work.
//
// See package align for the aligners that consume this model.
package scoring
