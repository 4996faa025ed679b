// Package writers turns snapshots into serialized outputs.
//
// Design:
//   • Writers own all presentation plumbing (TSV streaming, JSON, JSONL).
//   • Engines stay domain-only; output holds the per-model codecs.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
