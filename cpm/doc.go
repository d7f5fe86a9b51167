// Package cpm implements the Classified Popular Matching driver (C4): a
// two-phase augmentation over a classtree.Tree producing a matching that is
// popular under majority voting, subject to each vertex's upper quota.
package cpm
