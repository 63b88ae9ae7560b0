// Package keeper implements the asset module keeper.
//
// The keeper is the chain-side backend of the asset types: it answers balance
// and metadata queries for native denoms and CW20 tokens, dispatches the
// transfer messages built by types.Asset, and keeps a registry of liquidity
// pairs.
//
// # Balances
//
// Native balances come from the bank keeper. CW20 balances and token metadata
// are smart queries against the token contract. Native decimals are looked up
// in the pair factory first and fall back to bank denom metadata.
//
// # Pair Registry
//
// Pairs are stored in their canonical form under a key built from both asset
// keys in ascending byte order, so a pair can be looked up with its assets in
// either order. GetPairs pages through the registry in key order.
//
// # Observability
//
// Queries and dispatched messages are counted in Prometheus metrics, transfers
// are reported through SDK telemetry, and Dispatch and QueryPairPools start
// OpenTelemetry spans.
package keeper
