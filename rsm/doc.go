// Package rsm implements the Relaxed Stable Matching driver (C7): a CPM
// seed on a quota-flattened transformation of the instance, refined by a
// level-aware LIFO proposal loop (§4.6) into a feasible matching satisfying
// the relaxed-stability criterion of §8.3.
package rsm
