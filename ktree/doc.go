// Package ktree generates random partial k-trees: graphs with treewidth at
// most k, used both as test oracles (known treewidth) and benchmark input
// for the rest of the module.
package ktree
