package game

import "time"

// Scheduler runs a continuation after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler fires continuations on a timer goroutine
type TimerScheduler struct{}

// AfterFunc implements Scheduler
func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// ImmediateScheduler runs continuations synchronously and ignores the delay
type ImmediateScheduler struct{}

// AfterFunc implements Scheduler
func (ImmediateScheduler) AfterFunc(_ time.Duration, f func()) {
	f()
}
