// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends start/stop events to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Start(ctx context.Context) { *r.log = append(*r.log, "start "+r.id) }
func (r *recordingWorker) Stop()                     { *r.log = append(*r.log, "stop "+r.id) }

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "a", log: &log},
		&recordingWorker{id: "b", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	// не должно паниковать
	ws := NewWorkers()
	ws.Start(context.Background())
	ws.Stop()

	(&Workers{}).Stop()
}
