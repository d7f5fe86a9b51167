// Package verify holds the testable-property helpers of §8: rank
// histograms and lexicographic dominance over them (§8.1), and the
// relaxed-stability predicate (§8.3) RSM can optionally check its own
// output against.
package verify
