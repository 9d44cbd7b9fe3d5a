package rules

// noisePatterns mark non-transactional rows: card payments, transfers,
// reinvestments, tax drafts, and stray header fragments. The "items" entry
// is anchored so it only drops the literal junk row, not real purchases.
// "irs treas" is the ACH descriptor; bare "irs" would match inside words.
var noisePatterns = compilePatterns(
	`^items$`,
	`payment\s+thank\s+you`,
	`electronic\s+payment`,
	`bill\s+payment`,
	`online\s+transfer`,
	`credit\s+balance\s+refund`,
	`reinvestment`,
	`irs\s+treas`,
)

// IsNoise reports whether a trimmed description marks a row that should be
// dropped before normalization.
func IsNoise(description string) bool {
	return matchAny(noisePatterns, description)
}
