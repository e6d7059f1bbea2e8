// Package prober bounds how many filesystem existence checks run at once.
// A Prober admits at most its ceiling of Stat calls concurrently and queues
// the rest in issue order. Default returns the process-wide Prober shared by
// every view lookup that does not inject its own.
package prober
