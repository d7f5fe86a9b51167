// Package crmm implements the Classified Rank-Maximal Matching driver
// (C5): rank-by-rank augmentation over a classtree.Tree with inter-round
// typed-edge deletion, producing a matching that maximizes the multiset of
// assigned ranks in lexicographic order.
package crmm
