// Package match provides identifier tokenization and near-miss lookup
// for directive names.
//
// Key functions:
//   - Words: splits an identifier into its words (CamelCase, snake_case, kebab-case)
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known name for a misspelled directive
package match
