// Package wellness contains the wellness record store (users, mood entries,
// journal entries, daily metrics) and the user context provider built on top
// of it.
package wellness
