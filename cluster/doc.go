// Package cluster builds an agglomerative complete-linkage dendrogram from
// a condensed pairwise dissimilarity vector and cuts it into labeled
// clusters by height or by target cluster count.
package cluster
