// Package roulette is an in-memory toolkit for weighted random selection —
// the classic roulette-wheel algorithm behind loot tables, adaptive game AI,
// weighted load balancing and genetic-algorithm mating pools.
//
// 🎡 What is roulette/wheel?
//
//	A small, generic library built around a single container:
//		• Wheel — an ordered collection of (element, weight) regions that
//		  draws elements with probability proportional to their weight
//		• Add, combine and remove regions while probabilities stay consistent
//		• Draw-and-decay and draw-and-remove flows for consumable pools
//		• Per-wheel random source — seedable for reproducible sequences
//		• JSON snapshots of the region sequence for save/restore
//
// ✨ Why choose roulette?
//
//   - Minimal API — one container, a handful of obvious operations
//   - Deterministic when you need it — SeedRandom locks the draw sequence
//   - Generic — any comparable element, any integer or float weight
//   - No hidden state — every wheel owns its own generator, no globals
//
// Everything lives in one subpackage:
//
//	wheel/ — the Wheel container, Region values and the snapshot codec
//
// Quick ASCII example:
//
//	      ┌────────┐
//	      │ common │ 90%
//	      ├────────┤
//	      │  rare  │ 10%
//	      └────────┘
//
//	a wheel with weights {common: 90, rare: 10} returns "common"
//	on roughly nine draws out of ten.
//
// Dive into examples/ for runnable loot-table, game-AI and load-balancer
// demos, and into wheel/doc.go for the full contract.
//
//	go get github.com/katalvlaran/roulette/wheel
package roulette
