// Package coidb is the facade tying graph, submission, dissimilarity,
// cluster, markov, persistence, and plot together into one caller API:
// build an analysis from a graph file and a submission file, save/load it
// as a single opaque snapshot, plot its dendrogram, cut it into clusters,
// and spin up a Markov chain over it.
//
// Its method set mirrors coi_cluster_database from the original
// submission_analysis/ccdb/coi_cluster_db.py: Build corresponds to
// __init__, ClustersFromThreshold/ClustersFromNumber to
// clusters_from_threshold/clusters_from_number.
package coidb
