// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusbarview

// PendingMsg announces that a re-parse has been scheduled.
type PendingMsg struct{}

// ResultMsg carries the outcome of the last pipeline run. An empty Err with
// an empty Summary means the editor is empty and the pipeline is idle.
type ResultMsg struct {
	Summary string
	Err     string
	Repair  bool
}

// SpinnerTickMsg advances the pending spinner.
type SpinnerTickMsg struct{}
