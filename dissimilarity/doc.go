// Package dissimilarity computes the submission-to-submission dissimilarity
// matrix: the average-Hausdorff metric between two bit-sets over graph
// distances, its parallel N×N sweep, sanitization for clustering input, and
// the optional legacy matching-based metric preserved for test parity.
package dissimilarity
