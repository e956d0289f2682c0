// Package schedule changes the morph target on a fixed wall-clock interval.
//
// The [Scheduler] is decoupled from the frame loop: frames call the engine's
// Advance at whatever rate the renderer runs, while the scheduler calls
// BeginTransition every [Config.Interval]. Headless callers can skip the timer
// entirely and call [Scheduler.Step] on simulated time.
package schedule
