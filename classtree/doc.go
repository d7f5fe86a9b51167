// Package classtree builds the initial classification-tree flow network
// H₀ from a bipartite domain.Instance: the per-applicant and per-post
// "classification trees" (§4.2) plus the synthetic last-resort subtree
// that guarantees every applicant a feasible, if undesirable, assignment.
//
// The returned Tree wraps a *flownet.Network together with the lookup
// tables needed to go from a (applicant, post) pair to the four leaf/root
// node ids the drivers (cpm, crmm, rsm) add rank edges between, and back
// from a leaf node id to the (applicant, domain.PostRef) pair it names —
// the one place in the module that still deals in the "C_x_y" string
// naming convention, per the tagged-union resolution of the last-resort
// representation.
package classtree
