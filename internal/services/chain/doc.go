// Package chain reads chain height, score and node time.
package chain
