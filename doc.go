// Package percolate estimates the percolation threshold of an N×N grid
// by Monte Carlo simulation — from the union-find primitive up to the
// statistics driver.
//
// 🚀 What is percolate?
//
//	A small, focused library that brings together:
//		• unionfind/   — weighted quick-union with path compression
//		• percolation/ — the N×N site grid with virtual top/bottom sentinels
//		• montecarlo/  — repeated trials, mean / stddev / 95% confidence interval
//		• cmd/percolate — the command-line front end (N and T as arguments)
//
// ✨ Why choose percolate?
//
//   - Correct by construction – dual union-find instances eliminate the
//     classic "backwash" bug in the water-full query
//   - Deterministic – fixed seeds reproduce entire experiments bit for bit
//   - Pure Go – no cgo, no hidden state, no globals
//
// Quick ASCII example (a 3×3 grid that percolates down its middle column):
//
//	    ░ █ ░
//	    ░ █ ░
//	    ░ █ ░
//
//	█ = open site, ░ = blocked site; water entering the top row reaches
//	the bottom row, so the system percolates.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/percolate
package percolate
