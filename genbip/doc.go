// Package genbip generates synthetic bipartite preference instances for
// tests and benchmarks, in the style of the teacher's builder package:
// functional options over a shared config, seeded for reproducibility.
package genbip
