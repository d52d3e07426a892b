// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"productivity-tracker/internal/notify"
)

// ScheduleCall is one recorded ScheduleOnceAfter call
type ScheduleCall struct {
	Delay   time.Duration
	Payload notify.Payload
}

// FakeScheduler is an in-memory notify.Scheduler that records every call
type FakeScheduler struct {
	mu                 sync.Mutex
	permissionRequests int
	calls              []ScheduleCall

	// Permission is returned by RequestPermission. Empty means granted
	Permission notify.PermissionStatus

	// Error injection for testing
	RequestPermissionErr error
	ScheduleErr          error
}

// NewFakeScheduler creates a FakeScheduler that grants permission
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{Permission: notify.PermissionGranted}
}

// RequestPermission implements notify.Scheduler
func (f *FakeScheduler) RequestPermission(ctx context.Context) (notify.PermissionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.permissionRequests++
	if f.RequestPermissionErr != nil {
		return notify.PermissionDenied, f.RequestPermissionErr
	}
	if f.Permission == "" {
		return notify.PermissionGranted, nil
	}
	return f.Permission, nil
}

// ScheduleOnceAfter implements notify.Scheduler. Calls are recorded even
// when ScheduleErr is set
func (f *FakeScheduler) ScheduleOnceAfter(ctx context.Context, delay time.Duration, p notify.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, ScheduleCall{Delay: delay, Payload: p})
	return f.ScheduleErr
}

// Calls returns a copy of the recorded schedule calls
func (f *FakeScheduler) Calls() []ScheduleCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ScheduleCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// PermissionRequests returns how many times permission was requested
func (f *FakeScheduler) PermissionRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.permissionRequests
}

// SequentialIDs returns an ID source issuing "id-001", "id-002", ...
func SequentialIDs() *IDCounter {
	return &IDCounter{}
}
