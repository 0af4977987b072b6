// Package project owns the in-memory project collection and its persistence
// to a durable slot.
//
// A [Store] is constructed once per process, loaded with [Store.Load] and
// then handed by reference to whatever performs mutations. Every mutation
// writes the full collection back to the slot before it becomes visible, and
// then invokes the optional render callback with a copy of the collection and
// its [model.Summary].
//
// The collection is ordered newest-first: [Store.Add] prepends.
package project
