// Package writers turns per-record outcomes into serialized reports.
//
// Design:
//   - Writers own all presentation knowledge (finding lines, pretty blocks, JSON/JSONL).
//   - validate stays domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//
// Every writer runs in its own goroutine fed by a channel. After a write
// error it keeps draining the channel so senders never block.
package writers
