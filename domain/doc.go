// Package domain defines the external data model consumed and produced by
// the matching engine: bipartite vertices with ranked preference lists and
// per-vertex quotas, the Instance that groups them into applicant/post
// partitions, and the Matching/PartnerList types a computation returns.
//
// Nothing in this package touches the flow network; it is the contract the
// out-of-scope reader builds and the out-of-scope writer consumes. See
// cpm, crmm, rsm and engine for the components that operate on it.
package domain
