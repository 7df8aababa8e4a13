// Package confirm gates a run on the operator's approval of the extracted
// columns.
//
// A [Gate] receives a [Summary] of both extractions and answers yes or no.
// [Prompt] asks on a terminal; [Always] answers without asking and backs the
// --yes flag and tests. [Check] turns a "no" into [ErrUserAborted].
package confirm
