// Package tracker runs one logging session for a lift.
//
// A session is strictly linear, with no retries and no feedback between phases:
//
//	Load -> Acquire -> Append -> Save -> Summarize -> Print -> Render
//
// The tracker owns none of its surfaces. The store, the sample source, the
// console writer and the chart renderer are injected, and the label is
// passed in explicitly rather than read from the working directory.
//
// Failure boundaries:
//   - Load or Acquire failures abort before anything is written.
//   - A Save failure aborts; the previous store file is left intact.
//   - A Render failure happens after the history is saved and the summary
//     printed, so Record returns both the Result and the error.
package tracker
