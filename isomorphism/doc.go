// Package isomorphism decides whether two rooted or free trees are
// isomorphic. It offers three interchangeable algorithms — a
// string-based AHU encoding and two tuple-based encodings biased toward
// small and large trees respectively. AreRootedTreesIsomorphicDefault,
// and AreTreesIsomorphic when asked to, first run a fast O(n log n) sieve
// (FastNonIso) that can short-circuit obviously-non-isomorphic inputs
// (and, for free trees, trivially small isomorphic ones) without ever
// building an encoding; AreRootedTreesIsomorphic runs no sieve.
package isomorphism
