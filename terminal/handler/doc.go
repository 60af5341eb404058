// Package handler defines the listener surface between the stream and
// anything observing it.
//
// Listeners implement only the interfaces they care about; the stream
// uses type assertions at dispatch time and silently skips listeners
// lacking a given capability. The screen implements all of them, but a
// probe that only wants, say, bell events can implement BellHandler
// alone.
package handler
