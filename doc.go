// Package coinfolio provides the types and the view logic of a local-first
// cryptocurrency portfolio tracker.
//
// The core functionalities include:
//   - Coin Selection: a searchable projection of the coin list provided by a
//     CoinLister, with an open/closed flag driven by a keyboard shortcut.
//   - Asset Entry: a form bound to a single Coin that keeps a derived total in
//     sync with the amount and price fields and, on a valid submission, hands
//     an immutable Asset to an AssetSink.
//   - Holdings: a stateless aggregation of recorded assets against current
//     coin prices.
//   - Data Persistence: an append-only JSONL store of assets that is itself an
//     AssetSink.
//
// This package serves as the foundational logic for the `cfo` command-line
// tool. Nothing here reads ambient state: the coin list and the asset sink are
// always passed in by the caller.
package coinfolio
