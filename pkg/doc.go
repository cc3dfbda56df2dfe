// Package pkg provides the core libraries for adproof creative validation.
//
// # Overview
//
// Adproof checks advertising creative layouts against retailer and legal
// compliance rules and adapts them across placement formats. The packages
// under pkg/ compose into a pipeline:
//
//	creative -> rules -> brand -> resize -> pipeline
//
// # Packages
//
//   - creative: layout and element types, JSON reading and writing
//   - geo: rectangle geometry, overlap and containment math
//   - color: hex parsing, WCAG contrast ratios, palette matching
//   - format: the built-in placement format registry and TOML overlays
//   - rules: the compliance rule catalog and the validation engine
//   - brand: comprehensive brand-safety evaluation and scoring
//   - resize: adaptive layout resizing between formats
//   - pipeline: the cached validate/adapt/revalidate orchestration
//   - cache: pluggable result caches (memory, file, redis)
//   - store: layout persistence (memory, mongo)
//   - errors: coded errors shared across the module
//   - observability: hook points for instrumenting runs
//   - buildinfo: version metadata injected at build time
//
// Most callers want pkg/pipeline for the full flow, or pkg/rules for a
// single validation pass.
package pkg
