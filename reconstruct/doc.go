// Package reconstruct implements the matching reconstructor (C6): reading
// residual edges back out of a classtree.Tree's flow network to recover
// the applicant→post assignment a completed CPM/CRMM round produced, and
// translating that into the external domain.Matching.
package reconstruct
