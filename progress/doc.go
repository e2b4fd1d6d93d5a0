// Package progress classifies raw output lines from coding-agent CLIs into a
// uniform live progress model.
//
// # Background
//
// Each supported agent CLI (Claude Code, OpenCode, Cursor Agent) emits
// newline-delimited JSON with its own event schema: Claude nests tool
// invocations inside assistant message content arrays, OpenCode wraps them in
// a "part" envelope, Cursor keys a tool_call map by tool name, and several
// tools fall back to flat top-level fields. A consumer that wants one status
// line per agent action should not care which schema produced it.
//
// # Design
//
// A Classifier instance is created per execution and fed one line at a time.
// Each line is handled fail-open: unparsable or unrecognized lines yield no
// event and never an error. Format adapters are tried in fixed priority order
// (message envelope, part envelope, call-map envelope, flat fields); the
// first matching tool invocation wins. The extracted tool call is then mapped
// to a canonical Step by ordered precedence rules, with substring checks for
// specialized tooling (lint, test runners, git) evaluated strictly before the
// generic "Running command" fallback.
//
// The classifier owns two small pieces of cross-line state: the agent's
// reported todo list (replaced wholesale on every todo-write invocation) and
// nothing else. Write and edit invocations additionally carry a bounded
// before/after preview built by SynthesizeDiff — a glance preview, not a
// semantic diff.
//
// AggregateResult is independent of per-line classification: it scans the
// complete captured output once, after the process has exited, for the
// terminal result event and combines it with the exit code.
package progress
